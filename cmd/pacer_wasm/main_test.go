//go:build js && wasm

package main

import (
	"syscall/js"
	"testing"
)

func TestOptionsFromJS_NumericValues(t *testing.T) {
	arr := js.ValueOf([]any{
		map[string]any{"label": "5.0", "value": 5},
		map[string]any{"label": "5.5", "value": 5.5},
		map[string]any{"label": "6.0", "value": "6.0"},
	})

	options := optionsFromJS(arr)
	want := []string{"5", "5.5", "6.0"}
	if len(options) != len(want) {
		t.Fatalf("len(options) = %d, want %d", len(options), len(want))
	}
	for i, o := range options {
		if o.Value != want[i] {
			t.Errorf("options[%d].Value = %q, want %q", i, o.Value, want[i])
		}
	}

	res := findClosestValue(js.Undefined(), []js.Value{js.ValueOf(5.4), arr}).(map[string]any)
	if res["ok"] != true || res["value"] != "5.5" {
		t.Errorf("findClosestValue() = %v, want 5.5", res)
	}
}

func TestConvert_UnknownUnit(t *testing.T) {
	res := convert(js.Undefined(), []js.Value{js.ValueOf(8), js.ValueOf("knots"), js.ValueOf("mph")}).(map[string]any)
	if res["ok"] != false {
		t.Errorf("convert(knots) = %v, want failure", res)
	}
}
