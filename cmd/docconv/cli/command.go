// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command is one node of the command tree. The docconv root has both
// Run and Subcommands: a first argument naming a subcommand dispatches
// to it, anything else is handed to Run as an input path.
type Command struct {
	Name        string
	Summary     string // one line, shown in the parent's listing
	Description string
	// Usage overrides the synthesized usage line.
	Usage    string
	Examples []Example

	// Flags builds a fresh flag set. It is called once per parse and
	// once per help render, so bound parameter structs start clean.
	Flags func() *pflag.FlagSet

	Subcommands []*Command
	Run         func(args []string) error

	// HelpOutput receives help text. Subcommands inherit it from
	// their parent; the fallback is os.Stderr.
	HelpOutput io.Writer

	parent *Command
}

// Example is a usage example shown in help output.
type Example struct {
	Description string
	Command     string
}

// Execute parses args and runs the command or the subcommand named by
// the first argument. Usage problems come back as validation errors.
func (c *Command) Execute(args []string) error {
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(c.helpOutput())
		return nil
	}

	if sub, ok := c.subcommand(args); ok {
		sub.parent = c
		return sub.Execute(args[1:])
	}

	if c.Run == nil {
		return c.missingSubcommand(args)
	}

	if c.Flags != nil {
		remaining, err := c.parseFlags(args)
		if err != nil || remaining == nil {
			return err
		}
		args = remaining
	}
	return c.Run(args)
}

// subcommand returns the child named by args[0], if any.
func (c *Command) subcommand(args []string) (*Command, bool) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return nil, false
	}
	for _, sub := range c.Subcommands {
		if sub.Name == args[0] {
			return sub, true
		}
	}
	return nil, false
}

func (c *Command) missingSubcommand(args []string) error {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		if suggestion := suggestCommand(args[0], c.Subcommands); suggestion != "" {
			return Validation("unknown command %q (did you mean %q?)\n\nRun '%s --help' for usage.",
				args[0], suggestion, c.fullName())
		}
		return Validation("unknown command %q\n\nRun '%s --help' for usage.", args[0], c.fullName())
	}

	c.PrintHelp(c.helpOutput())
	if len(c.Subcommands) == 0 {
		return fmt.Errorf("no action defined for %q", c.fullName())
	}
	if len(args) == 0 {
		return Validation("subcommand required")
	}
	return Validation("subcommand required (got flag %q)", args[0])
}

// parseFlags returns the positional arguments left after flag parsing.
// A nil slice with a nil error means help was printed.
func (c *Command) parseFlags(args []string) ([]string, error) {
	flagSet := c.Flags()
	flagSet.SetOutput(io.Discard)

	err := flagSet.Parse(args)
	if err == pflag.ErrHelp {
		c.PrintHelp(c.helpOutput())
		return nil, nil
	}
	if err != nil {
		message := err.Error()
		if strings.Contains(message, "unknown flag") || strings.Contains(message, "unknown shorthand flag") {
			// The failed parse may have consumed state.
			if suggestion := suggestFlag(args, c.Flags()); suggestion != "" {
				return nil, Validation("%s (did you mean %s?)\n\nRun '%s --help' for usage.",
					message, suggestion, c.fullName())
			}
		}
		return nil, Validation("%s\n\nRun '%s --help' for usage.", message, c.fullName())
	}

	remaining := flagSet.Args()
	if remaining == nil {
		remaining = []string{}
	}
	return remaining, nil
}

// PrintHelp writes the description, usage line, subcommand listing,
// flags and examples to w.
func (c *Command) PrintHelp(w io.Writer) {
	name := c.fullName()

	switch {
	case c.Description != "":
		fmt.Fprintf(w, "%s\n\n", c.Description)
	case c.Summary != "":
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}

	usage := c.Usage
	if usage == "" {
		usage = name + " [flags]"
		if len(c.Subcommands) > 0 {
			usage = name + " <command> [flags]"
		}
	}
	fmt.Fprintf(w, "Usage:\n  %s\n", usage)

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		tw.Flush()
	}

	if c.Flags != nil {
		if usages := c.Flags().FlagUsages(); usages != "" {
			fmt.Fprintf(w, "\nFlags:\n%s", usages)
		}
	}

	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description == "" {
				fmt.Fprintf(w, "  %s\n", example.Command)
				continue
			}
			fmt.Fprintf(w, "  # %s\n  %s\n\n", example.Description, example.Command)
		}
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", name)
	}
}

func (c *Command) helpOutput() io.Writer {
	for command := c; command != nil; command = command.parent {
		if command.HelpOutput != nil {
			return command.HelpOutput
		}
	}
	return os.Stderr
}

// fullName returns the command path, e.g. "docconv diag".
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
