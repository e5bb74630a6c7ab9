// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/declrun/decli/pkg/argspec"
)

func TestRunDispatchesParsedValues(t *testing.T) {
	c := New("demo")
	var got Values
	c.Command("greet", Args{
		"name":  {},
		"shout": {Option: "--shout", Short: "-s"},
	})(Func{
		Params: []Param{
			{Name: "name", Type: argspec.String()},
			{Name: "shout", Type: argspec.Bool()},
		},
		Run: func(v Values) error {
			got = v
			return nil
		},
	})

	if err := c.Run([]string{"demo", "greet", "bob", "-s"}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	want := Values{"name": "bob", "shout": true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestRunUnknownCommandFailsBeforeParsing(t *testing.T) {
	c := New("demo")
	c.Command("greet", Args{"name": {}})(Func{
		Params: []Param{{Name: "name", Type: argspec.String()}},
		Run:    func(Values) error { return nil },
	})

	// The required argument is missing too, but the unknown command is
	// reported first.
	err := c.Run([]string{"demo", "nope"})
	var uce *UnknownCommandError
	if !errors.As(err, &uce) {
		t.Fatalf("err = %v, want UnknownCommandError", err)
	}
	if uce.Name != "nope" {
		t.Errorf("Name = %q", uce.Name)
	}
}

func TestRunPropagatesHandlerError(t *testing.T) {
	c := New("demo")
	boom := errors.New("boom")
	c.Command("fail", nil)(Func{
		Run: func(Values) error { return boom },
	})

	if err := c.Run([]string{"demo", "fail"}); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestRunReportsCommandOnUnknownArgs(t *testing.T) {
	c := New("demo")
	c.Command("x", nil)(Func{
		Run: func(Values) error { return nil },
	})

	err := c.Run([]string{"demo", "x", "surplus"})
	var ue *UnknownArgsError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want UnknownArgsError", err)
	}
	if ue.Command != "x" {
		t.Errorf("Command = %q", ue.Command)
	}
}

func TestRunHelpListsCommandsInOrder(t *testing.T) {
	oldIsTerminal := isTerminalFn
	defer func() { isTerminalFn = oldIsTerminal }()
	isTerminalFn = func(int) bool { return false }

	var buf bytes.Buffer
	c := New("demo", WithHelp("A demo tool."), WithOutput(&buf))
	c.Command("beta", nil)(Func{Doc: "Second", Run: func(Values) error { return nil }})
	c.Command("alpha", nil)(Func{Doc: "First", Run: func(Values) error { return nil }})

	if err := c.Run([]string{"demo"}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "A demo tool.") {
		t.Errorf("missing top help in output:\n%s", out)
	}
	if !strings.Contains(out, "Available commands:") {
		t.Errorf("missing heading in output:\n%s", out)
	}
	if strings.Index(out, "beta") > strings.Index(out, "alpha") {
		t.Errorf("commands not in registration order:\n%s", out)
	}
}

func TestRunCommandHelpShowsTypedArguments(t *testing.T) {
	oldIsTerminal := isTerminalFn
	defer func() { isTerminalFn = oldIsTerminal }()
	isTerminalFn = func(int) bool { return false }

	var buf bytes.Buffer
	c := New("demo", WithOutput(&buf))
	c.Command("greet", Args{
		"name":  {Help: "who to greet"},
		"count": {Option: "--count", Short: "-c", Help: "how many"},
	})(Func{
		Doc: "Print a greeting",
		Params: []Param{
			{Name: "name", Type: argspec.String()},
			{Name: "count", Type: argspec.Int(), Default: argspec.DefaultOf(1)},
		},
		Run: func(Values) error { return nil },
	})

	if err := c.Run([]string{"demo", "greet", "--help"}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Usage: demo greet <name>") {
		t.Errorf("missing usage line:\n%s", out)
	}
	if !strings.Contains(out, "(str) who to greet") {
		t.Errorf("missing typed positional help:\n%s", out)
	}
	if !strings.Contains(out, "-c, --count") {
		t.Errorf("missing flag label:\n%s", out)
	}
	if !strings.Contains(out, "(int) how many") {
		t.Errorf("missing typed flag help:\n%s", out)
	}
}
