// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1}, // substitution
		{"abc", "ab", 1},  // deletion
		{"ab", "abc", 1},  // insertion
		{"abc", "bac", 2}, // transposition (counted as 2 edits)
		{"kitten", "sitting", 3},
		{"float32", "flaot32", 2},
		{"diag", "diga", 2},
	}

	for _, test := range tests {
		t.Run(test.a+"->"+test.b, func(t *testing.T) {
			got := levenshtein(test.a, test.b)
			if got != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
			if reverse := levenshtein(test.b, test.a); reverse != got {
				t.Errorf("levenshtein not symmetric: %d vs %d", got, reverse)
			}
		})
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{{Name: "diag"}, {Name: "check"}}

	tests := []struct {
		input string
		want  string
	}{
		{"dag", "diag"},
		{"chek", "check"},
		{"completely-different", ""},
	}
	for _, tt := range tests {
		if got := suggestCommand(tt.input, commands); got != tt.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	newFlagSet := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flagSet.BoolP("float32", "f", false, "")
		flagSet.BoolP("jsonc", "j", false, "")
		flagSet.String("binary-ext", "", "")
		return flagSet
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"long typo", []string{"--binary-extt", ".dat"}, "--binary-ext"},
		{"long with value", []string{"--flot32=true"}, "--float32"},
		{"known flags skipped", []string{"-f", "--jsonc", "--jsnoc"}, "--jsonc"},
		{"combined shorthands skipped", []string{"-fj", "--floa"}, "--float32"},
		{"single dash long name", []string{"-float32x"}, "--float32"},
		{"nothing close", []string{"--recursive-everything"}, ""},
		{"positional only", []string{"a.json"}, ""},
		{"after terminator", []string{"--", "--flot32"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := suggestFlag(tt.args, newFlagSet()); got != tt.want {
				t.Errorf("suggestFlag(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
