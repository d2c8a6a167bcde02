// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/docconv/cmd/docconv/cli"
	"github.com/bureau-foundation/docconv/lib/config"
	"github.com/bureau-foundation/docconv/lib/convert"
	"github.com/bureau-foundation/docconv/lib/document"
	"github.com/bureau-foundation/docconv/lib/testutil"
)

// execute runs the command tree with args and returns stdout, stderr,
// and the returned error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvironmentVariable, "")
	var stdout, stderr bytes.Buffer
	err := NewRoot(&stdout, &stderr).Execute(args)
	return stdout.String(), stderr.String(), err
}

func TestConvertJSONToLens(t *testing.T) {
	directory := t.TempDir()
	source := testutil.WriteFile(t, directory, "front.json", []byte(`{"focal": 1.8, "name": "front"}`))

	_, stderr, err := execute(t, source)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(directory, "front.lens"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	value, err := document.DecodeCBOR(data)
	if err != nil {
		t.Fatalf("DecodeCBOR: %v", err)
	}
	if name, _ := value.Lookup("name"); !name.Equal(document.String("front")) {
		t.Errorf("name = %v", name)
	}
	if !strings.Contains(stderr, `"msg":"converted document"`) || !strings.Contains(stderr, `"command":"docconv"`) {
		t.Errorf("stderr = %q, want a JSON log record", stderr)
	}
}

func TestConvertDatVariant(t *testing.T) {
	directory := t.TempDir()
	source := testutil.WriteFile(t, directory, "front.json", []byte(`{"focal": 0.1}`))

	if _, _, err := execute(t, "--binary-ext", ".dat", "-f", source); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	value := mustLoadBinary(t, filepath.Join(directory, "front.dat"))
	focal, _ := value.Lookup("focal")
	if got, _ := focal.AsFloat(); got != float64(float32(0.1)) {
		t.Errorf("focal = %v, want narrowed", got)
	}
	if _, err := os.Stat(filepath.Join(directory, "front.lens")); !os.IsNotExist(err) {
		t.Error("unexpected .lens output")
	}
}

func TestConvertBinaryToJSON(t *testing.T) {
	directory := t.TempDir()
	data, err := document.EncodeCBOR(document.ObjectOf(document.Member{Key: "i", Value: document.Int(100)}))
	if err != nil {
		t.Fatalf("EncodeCBOR: %v", err)
	}
	source := testutil.WriteFile(t, directory, "a.dat", data)

	if _, _, err := execute(t, source); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	text, err := os.ReadFile(filepath.Join(directory, "a.json"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(text) != "{\n    \"i\": 100\n}\n" {
		t.Errorf("text = %q", text)
	}
}

func TestConvertWithConfigFile(t *testing.T) {
	directory := t.TempDir()
	configPath := testutil.WriteFile(t, directory, "docconv.yaml", []byte("binary_extension: .bin\nallow_comments: true\n"))
	source := testutil.WriteFile(t, directory, "c.json", []byte("// comment\n[1, 2,]\n"))

	if _, _, err := execute(t, "--config", configPath, source); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	value := mustLoadBinary(t, filepath.Join(directory, "c.bin"))
	if value.Len() != 2 {
		t.Errorf("value = %v", value)
	}
}

func TestConvertErrors(t *testing.T) {
	directory := t.TempDir()
	unsupported := testutil.WriteFile(t, directory, "notes.txt", []byte("{}"))
	broken := testutil.WriteFile(t, directory, "broken.json", []byte("{"))
	badConfig := testutil.WriteFile(t, directory, "bad.yaml", []byte("binary_extension: json\n"))

	tests := []struct {
		name     string
		args     []string
		category cli.ErrorCategory
		is       error
	}{
		{"missing argument", nil, cli.CategoryValidation, convert.ErrMissingArgument},
		{"too many arguments", []string{"a.json", "b.json"}, cli.CategoryValidation, nil},
		{"missing file", []string{filepath.Join(directory, "absent.json")}, cli.CategoryNotFound, convert.ErrFileNotFound},
		{"unsupported extension", []string{unsupported}, cli.CategoryValidation, convert.ErrUnsupportedExtension},
		{"parse failure", []string{broken}, cli.CategoryInternal, nil},
		{"invalid config", []string{"--config", badConfig, broken}, cli.CategoryValidation, nil},
		{"invalid extension flag", []string{"--binary-ext", ".json", broken}, cli.CategoryValidation, nil},
		{"unknown flag", []string{"--float64", broken}, cli.CategoryValidation, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := cli.CategoryOf(err); got != tt.category {
				t.Errorf("category = %s, want %s (%v)", got, tt.category, err)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error = %v, want %v in chain", err, tt.is)
			}
			if code, display := cli.ExitCode(err); code != 1 || !display {
				t.Errorf("ExitCode = (%d, %v), want (1, true)", code, display)
			}
		})
	}

	if entries := testutil.DirEntries(t, directory); len(entries) != 3 {
		t.Errorf("failed conversions left output files: %v", entries)
	}
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasPrefix(stdout, "docconv ") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestHelp(t *testing.T) {
	_, stderr, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	for _, want := range []string{"docconv [flags] <path>", "--float32", "--binary-ext", "diag", "check"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("help missing %q", want)
		}
	}
}

func mustLoadBinary(t *testing.T, path string) document.Value {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	value, err := document.DecodeCBOR(data)
	if err != nil {
		t.Fatalf("DecodeCBOR: %v", err)
	}
	return value
}
