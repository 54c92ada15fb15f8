package main

import (
	"log"

	"pacer/internal/cli"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	return cli.Execute()
}
