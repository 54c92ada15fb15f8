//go:build js && wasm

package main

import (
	"math"
	"strconv"
	"syscall/js"

	"pacer/internal/pace"
)

// Options are passed to and from JS as arrays of {label, value} objects.
func main() {
	exports := map[string]func(js.Value, []js.Value) any{
		"pacerConvert":                   convert,
		"pacerGeneratePaceOptions":       generatePaceOptions,
		"pacerGenerateSpeedOptions":      generateSpeedOptions,
		"pacerFindClosestValue":          findClosestValue,
		"pacerFindBoundingPosition":      findBoundingPosition,
		"pacerCalculateRaceTime":         calculateRaceTime,
		"pacerParseTimeInput":            parseTimeInput,
		"pacerCalculatePaceFromRaceTime": calculatePaceFromRaceTime,
		"pacerParseCommandInput":         parseCommandInput,
	}
	for name, fn := range exports {
		js.Global().Set(name, js.FuncOf(fn))
	}
	select {}
}

func convert(_ js.Value, args []js.Value) any {
	if len(args) < 3 {
		return failure("expected arguments: value(number), from(string), to(string)")
	}
	from, to := pace.Unit(args[1].String()), pace.Unit(args[2].String())
	if !from.Valid() || !to.Valid() {
		return failure("unknown unit: expected min/mi, min/km, mph or kmh")
	}
	v, err := pace.Convert(number(args[0]), from, to)
	if err != nil {
		return failure(err.Error())
	}
	return map[string]any{"ok": true, "value": v}
}

func generatePaceOptions(_ js.Value, args []js.Value) any {
	if len(args) < 2 {
		return failure("expected arguments: startMinutes(number), endMinutes(number), stepSeconds(number)?")
	}
	step := pace.DefaultPaceStepSeconds
	if len(args) > 2 && args[2].Type() == js.TypeNumber {
		step = args[2].Int()
	}
	options := pace.GeneratePaceOptions(number(args[0]), number(args[1]), step)
	return map[string]any{"ok": true, "options": optionsToJS(options)}
}

func generateSpeedOptions(_ js.Value, args []js.Value) any {
	if len(args) < 2 {
		return failure("expected arguments: start(number), end(number), step(number)?")
	}
	step := pace.DefaultSpeedStep
	if len(args) > 2 && args[2].Type() == js.TypeNumber {
		step = args[2].Float()
	}
	options := pace.GenerateSpeedOptions(number(args[0]), number(args[1]), step)
	return map[string]any{"ok": true, "options": optionsToJS(options)}
}

func findClosestValue(_ js.Value, args []js.Value) any {
	return position(args, pace.Nearest)
}

func findBoundingPosition(_ js.Value, args []js.Value) any {
	return position(args, pace.Floor)
}

func position(args []js.Value, mode pace.Mode) any {
	if len(args) < 2 {
		return failure("expected arguments: target(number), options(array)")
	}
	value, ok := pace.Position(number(args[0]), optionsFromJS(args[1]), mode)
	if !ok {
		return failure("options are empty")
	}
	return map[string]any{"ok": true, "value": value}
}

func calculateRaceTime(_ js.Value, args []js.Value) any {
	if len(args) < 2 {
		return failure("expected arguments: paceMinPerMile(number), raceMiles(number)")
	}
	return map[string]any{"ok": true, "time": pace.CalculateRaceTime(number(args[0]), number(args[1]))}
}

func parseTimeInput(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return failure("expected arguments: text(string)")
	}
	minutes, err := pace.ParseTimeInput(args[0].String())
	if err != nil {
		return failure(err.Error())
	}
	return map[string]any{"ok": true, "minutes": minutes}
}

func calculatePaceFromRaceTime(_ js.Value, args []js.Value) any {
	if len(args) < 2 {
		return failure("expected arguments: raceMinutes(number), raceMiles(number)")
	}
	p, err := pace.CalculatePaceFromRaceTime(number(args[0]), number(args[1]))
	if err != nil {
		return failure(err.Error())
	}
	return map[string]any{"ok": true, "pace": p}
}

func parseCommandInput(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return failure("expected arguments: text(string)")
	}
	cmd, err := pace.ParseCommandInput(args[0].String())
	if err != nil {
		return failure(err.Error())
	}
	return map[string]any{
		"ok":    true,
		"kind":  string(cmd.Kind),
		"value": cmd.Value,
		"unit":  string(cmd.Unit),
		"input": cmd.Input,
	}
}

func failure(msg string) map[string]any {
	return map[string]any{
		"ok":    false,
		"error": msg,
	}
}

// number reads a JS number, treating anything else as NaN
func number(v js.Value) float64 {
	if v.Type() != js.TypeNumber {
		return math.NaN()
	}
	return v.Float()
}

func optionsToJS(options []pace.PickerOption) []any {
	out := make([]any, len(options))
	for i, o := range options {
		out[i] = map[string]any{"label": o.Label, "value": o.Value}
	}
	return out
}

func optionsFromJS(v js.Value) []pace.PickerOption {
	if v.IsUndefined() || v.IsNull() || v.Type() != js.TypeObject {
		return nil
	}
	n := v.Get("length").Int()
	options := make([]pace.PickerOption, 0, n)
	for i := 0; i < n; i++ {
		item := v.Index(i)
		options = append(options, pace.PickerOption{
			Label: item.Get("label").String(),
			Value: optionValue(item.Get("value")),
		})
	}
	return options
}

// optionValue accepts a value given as a string or as a JS number
func optionValue(v js.Value) string {
	if v.Type() == js.TypeNumber {
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	}
	return v.String()
}
