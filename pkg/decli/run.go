// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/declrun/decli/pkg/argspec"
)

var isTerminalFn = term.IsTerminal

// Run dispatches one invocation. osArgs is the full argument vector
// including the program name. With no command, or with "--help", the
// command overview is printed. An unknown command fails before any
// argument parsing.
func (c *CLI) Run(osArgs []string) error {
	args := osArgs
	if len(args) > 0 {
		args = args[1:]
	}
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" || args[0] == "help" {
		c.printHelp()
		return nil
	}
	name := args[0]
	cmd, ok := c.registry.Lookup(name)
	if !ok {
		return &UnknownCommandError{Name: name}
	}
	if len(args) > 1 && (args[1] == "--help" || args[1] == "-h") {
		c.printCommandHelp(cmd)
		return nil
	}
	vals, err := c.Parse(args[1:], cmd.Args, cmd.AllowExtra)
	if err != nil {
		if ue, ok := err.(*UnknownArgsError); ok {
			ue.Command = name
		}
		return err
	}
	return cmd.Func.Run(vals)
}

func (c *CLI) printHelp() {
	heading := color.New(color.FgCyan, color.Bold)
	if !isTerminalFn(int(os.Stdout.Fd())) {
		heading.DisableColor()
	}
	if c.help != "" {
		fmt.Fprintln(c.out, c.help)
		fmt.Fprintln(c.out)
	}
	heading.Fprintln(c.out, "Available commands:")
	w := tabwriter.NewWriter(c.out, 0, 0, 3, ' ', 0)
	for _, cmd := range c.registry.All() {
		fmt.Fprintf(w, "  %s\t%s\n", cmd.Name, cmd.Description)
	}
	w.Flush()
	fmt.Fprintf(c.out, "\nRun %q for details on a command.\n", c.name+" <command> --help")
}

func (c *CLI) printCommandHelp(cmd *Command) {
	heading := color.New(color.FgCyan, color.Bold)
	if !isTerminalFn(int(os.Stdout.Fd())) {
		heading.DisableColor()
	}
	fmt.Fprintf(c.out, "Usage: %s %s%s\n", c.name, cmd.Name, usageSuffix(cmd))
	if cmd.Description != "" {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, cmd.Description)
	}
	if len(cmd.Args) == 0 {
		return
	}
	fmt.Fprintln(c.out)
	heading.Fprintln(c.out, "Arguments:")
	w := tabwriter.NewWriter(c.out, 0, 0, 3, ' ', 0)
	for _, d := range cmd.Args {
		fmt.Fprintf(w, "  %s\t%s\n", argLabel(d), d.Help)
	}
	w.Flush()
}

func usageSuffix(cmd *Command) string {
	s := ""
	for _, d := range cmd.Args {
		if d.Positional() && !d.IsFlag {
			s += " <" + d.ID + ">"
		}
	}
	if cmd.AllowExtra {
		s += " [args...]"
	}
	return s
}

// argLabel is the left column of a command's argument table.
func argLabel(d argspec.Descriptor) string {
	switch {
	case d.Positional() && !d.IsFlag:
		return d.ID
	case d.Short != "":
		return d.Short + ", " + optionOf(d)
	default:
		return optionOf(d)
	}
}

func optionOf(d argspec.Descriptor) string {
	if d.Option != "" {
		return d.Option
	}
	return "--" + d.ID
}
