// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decli

import (
	"strings"
	"testing"

	"github.com/declrun/decli/pkg/argspec"
)

func TestCommandRegistersDescriptorsInParamOrder(t *testing.T) {
	c := New("t")
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

	cmd, ok := c.Registry().Lookup("greet")
	if !ok {
		t.Fatalf("command not registered")
	}
	if cmd.Description != "Print a greeting" {
		t.Errorf("Description = %q", cmd.Description)
	}
	if len(cmd.Args) != 2 {
		t.Fatalf("got %d descriptors, want 2", len(cmd.Args))
	}
	if cmd.Args[0].ID != "name" || cmd.Args[1].ID != "count" {
		t.Errorf("descriptor order = %q, %q", cmd.Args[0].ID, cmd.Args[1].ID)
	}
	if !cmd.Args[0].Positional() {
		t.Errorf("name should be positional")
	}
	if cmd.Args[1].Option != "--count" || cmd.Args[1].Short != "-c" {
		t.Errorf("count flags = %q, %q", cmd.Args[1].Option, cmd.Args[1].Short)
	}
}

func TestCommandHelpPrependsTypeName(t *testing.T) {
	c := New("t")
	c.Command("greet", Args{
		"name": {Help: "who to greet"},
	})(Func{
		Params: []Param{
			{Name: "name", Type: argspec.String()},
			{Name: "count", Type: argspec.Int(), Default: argspec.DefaultOf(1)},
		},
		Run: func(Values) error { return nil },
	})

	cmd, _ := c.Registry().Lookup("greet")
	if got := cmd.Args[0].Help; got != "(str) who to greet" {
		t.Errorf("Help = %q, want %q", got, "(str) who to greet")
	}
	// No user help text: just the type name, no trailing space.
	if got := cmd.Args[1].Help; got != "(int)" {
		t.Errorf("Help = %q, want %q", got, "(int)")
	}
}

func TestCommandReturnsFuncUnchanged(t *testing.T) {
	c := New("t")
	fn := Func{
		Doc:    "doc",
		Params: []Param{{Name: "x", Type: argspec.String()}},
		Run:    func(Values) error { return nil },
	}
	got := c.Command("x", nil)(fn)
	if got.Doc != fn.Doc || len(got.Params) != len(fn.Params) {
		t.Errorf("binding changed the func: %+v", got)
	}
}

func TestCommandPanicsOnUnknownOverride(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		if !strings.Contains(r.(string), "unknown parameter") {
			t.Errorf("panic = %v", r)
		}
	}()
	c := New("t")
	c.Command("x", Args{"nope": {}})(Func{
		Params: []Param{{Name: "x", Type: argspec.String()}},
		Run:    func(Values) error { return nil },
	})
}

func TestCommandPanicsOnUnsupportedType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	c := New("t")
	c.Command("x", nil)(Func{
		Params: []Param{{Name: "x", Type: argspec.Named("blob")}},
		Run:    func(Values) error { return nil },
	})
}

func TestConverterTableMatchesExactKey(t *testing.T) {
	c := New("t", WithConverters(map[string]argspec.Convert{
		"blob": func(s string) (any, error) { return []byte(s), nil },
	}))
	c.Command("x", nil)(Func{
		Params: []Param{{Name: "b", Type: argspec.Named("blob")}},
		Run:    func(Values) error { return nil },
	})

	cmd, _ := c.Registry().Lookup("x")
	got, err := cmd.Args[0].Convert("hi")
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if string(got.([]byte)) != "hi" {
		t.Errorf("Convert = %#v", got)
	}
}

func TestConverterTableBeatsPerArgConverter(t *testing.T) {
	c := New("t", WithConverters(map[string]argspec.Convert{
		"str": func(string) (any, error) { return "table", nil },
	}))
	c.Command("x", Args{
		"s": {Convert: func(string) (any, error) { return "arg", nil }},
	})(Func{
		Params: []Param{{Name: "s", Type: argspec.String()}},
		Run:    func(Values) error { return nil },
	})

	cmd, _ := c.Registry().Lookup("x")
	got, _ := cmd.Args[0].Convert("ignored")
	if got != "table" {
		t.Errorf("Convert = %#v, want %q", got, "table")
	}
}

func TestRegistryOverwriteKeepsOrder(t *testing.T) {
	c := New("t")
	reg := func(name, doc string) {
		c.Command(name, nil)(Func{
			Doc: doc,
			Run: func(Values) error { return nil },
		})
	}
	reg("a", "first")
	reg("b", "second")
	reg("a", "replaced")

	all := c.Registry().All()
	if len(all) != 2 {
		t.Fatalf("got %d commands, want 2", len(all))
	}
	if all[0].Name != "a" || all[1].Name != "b" {
		t.Errorf("order = %q, %q", all[0].Name, all[1].Name)
	}
	if all[0].Description != "replaced" {
		t.Errorf("Description = %q, want %q", all[0].Description, "replaced")
	}
}
