// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decli

import (
	"fmt"
	"strings"
)

// UnknownCommandError is returned by Run when the first token names no
// registered command. It fails before any parsing occurs.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Name)
}

// UnknownArgsError is returned when tokens match no descriptor and the
// command does not accept extras.
type UnknownArgsError struct {
	Command string
	Args    []string
}

func (e *UnknownArgsError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("unrecognized arguments: %s", strings.Join(e.Args, " "))
	}
	return fmt.Sprintf("unrecognized arguments for %q: %s", e.Command, strings.Join(e.Args, " "))
}

// MissingArgError is returned when a required argument (no default) was
// not supplied.
type MissingArgError struct {
	ID     string
	Option string
}

func (e *MissingArgError) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("missing required argument: %s", e.Option)
	}
	return fmt.Sprintf("missing required argument: %s", e.ID)
}

// InvalidValueError is returned when a token cannot be coerced by the
// argument's converter. It wraps the converter error.
type InvalidValueError struct {
	ID    string
	Value string
	Err   error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %q: %v", e.ID, e.Err)
}

func (e *InvalidValueError) Unwrap() error { return e.Err }

// InvalidChoiceError is returned when a converted value is outside the
// argument's fixed choice set.
type InvalidChoiceError struct {
	ID      string
	Value   any
	Choices []any
}

func (e *InvalidChoiceError) Error() string {
	opts := make([]string, 0, len(e.Choices))
	for _, c := range e.Choices {
		opts = append(opts, fmt.Sprint(c))
	}
	return fmt.Sprintf("invalid choice for %q: %v (choose from %s)", e.ID, e.Value, strings.Join(opts, ", "))
}
