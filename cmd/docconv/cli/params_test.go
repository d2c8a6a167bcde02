// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

type commonParams struct {
	Config string `flag:"config" desc:"configuration file"`
}

type testParams struct {
	commonParams
	Narrow    bool     `flag:"float32,f" desc:"narrow floats"`
	Extension string   `flag:"binary-ext" desc:"binary extension" default:".lens"`
	Depth     int      `flag:"depth" default:"3"`
	Inputs    []string `flag:"input" default:".dat,.cbor"`
	Ignored   string
}

func TestBindFlags_Defaults(t *testing.T) {
	var params testParams
	flagSet := FlagsFromParams("test", &params)

	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if params.Extension != ".lens" {
		t.Errorf("Extension = %q, want .lens", params.Extension)
	}
	if params.Depth != 3 {
		t.Errorf("Depth = %d, want 3", params.Depth)
	}
	if len(params.Inputs) != 2 || params.Inputs[0] != ".dat" || params.Inputs[1] != ".cbor" {
		t.Errorf("Inputs = %v, want [.dat .cbor]", params.Inputs)
	}
	if flagSet.Lookup("ignored") != nil {
		t.Error("untagged field was bound")
	}
}

func TestBindFlags_Parse(t *testing.T) {
	var params testParams
	flagSet := FlagsFromParams("test", &params)

	args := []string{"-f", "--binary-ext=.dat", "--config", "c.yaml", "--input", ".bin", "path.json"}
	if err := flagSet.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !params.Narrow {
		t.Error("Narrow not set by -f")
	}
	if params.Extension != ".dat" {
		t.Errorf("Extension = %q", params.Extension)
	}
	if params.Config != "c.yaml" {
		t.Errorf("embedded Config = %q", params.Config)
	}
	if len(params.Inputs) != 1 || params.Inputs[0] != ".bin" {
		t.Errorf("Inputs = %v", params.Inputs)
	}
	if rest := flagSet.Args(); len(rest) != 1 || rest[0] != "path.json" {
		t.Errorf("Args() = %v", rest)
	}
}

func TestBindFlags_Description(t *testing.T) {
	var params testParams
	flagSet := FlagsFromParams("test", &params)

	flag := flagSet.Lookup("float32")
	if flag == nil {
		t.Fatal("float32 not bound")
	}
	if flag.Shorthand != "f" || flag.Usage != "narrow floats" {
		t.Errorf("flag = %+v", flag)
	}
}

func TestBindFlags_Errors(t *testing.T) {
	tests := []struct {
		name   string
		params any
		want   string
	}{
		{"not a pointer", testParams{}, "pointer to a struct"},
		{"pointer to non-struct", new(int), "pointer to a struct"},
		{"unsupported type", &struct {
			Rate float32 `flag:"rate"`
		}{}, "unsupported type"},
		{"bad default", &struct {
			On bool `flag:"on" default:"maybe"`
		}{}, "default for --on"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BindFlags(tt.params, pflag.NewFlagSet("test", pflag.ContinueOnError))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("BindFlags error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestFlagsFromParams_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid params")
		}
	}()
	FlagsFromParams("test", 42)
}
