// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/declrun/decli/pkg/argspec"
)

// DefaultExtraKey is the reserved result key for pass-through extra
// tokens. It never appears as a flag in the generated grammar.
const DefaultExtraKey = "_extra"

// Arg is the author-supplied override for one parameter: how it is
// exposed on the command line. All fields are optional.
type Arg struct {
	// Option is the long flag to expose (e.g. "--verbose"). Absent means
	// the parameter is positional.
	Option string
	// Short is a single short flag (e.g. "-v").
	Short string
	// Help is the user help text.
	Help string
	// Convert overrides type-driven resolution entirely.
	Convert argspec.Convert
}

// Args maps parameter names to overrides. Parameters not mentioned get an
// empty override.
type Args map[string]Arg

// Param declares one parameter of a command function: its name, declared
// type, and default. A zero Default is the "no default" sentinel and
// makes the argument required; argspec.DefaultOf(nil) is a real default.
type Param struct {
	Name    string
	Type    argspec.Type
	Default argspec.Default
}

// Func is a command target: documentation, the declared signature, and
// the handler invoked with the parsed values.
type Func struct {
	Doc    string
	Params []Param
	Run    func(Values) error
}

// CLI owns the command registry, the converter table, and the reserved
// extra-tokens key. It is written during registration and read-only
// during dispatch; no locking, single control-flow thread by contract.
type CLI struct {
	name       string
	help       string
	converters map[string]argspec.Convert
	extraKey   string
	registry   *Registry
	out        io.Writer
}

// Option configures a CLI at construction time.
type Option func(*CLI)

// WithHelp sets the top-level help text printed before the command list.
func WithHelp(help string) Option {
	return func(c *CLI) { c.help = help }
}

// WithConverters installs the converter table: exact declared-type key
// (argspec.Type.Key) to converter. A table entry forces skip-resolve mode
// for every parameter declaring that exact type.
func WithConverters(table map[string]argspec.Convert) Option {
	return func(c *CLI) { c.converters = table }
}

// WithExtraKey overrides the reserved key for pass-through extra tokens.
func WithExtraKey(key string) Option {
	return func(c *CLI) { c.extraKey = key }
}

// WithOutput redirects help output, mainly for tests.
func WithOutput(w io.Writer) Option {
	return func(c *CLI) { c.out = w }
}

// New creates a CLI with an empty registry.
func New(name string, opts ...Option) *CLI {
	c := &CLI{
		name:     name,
		extraKey: DefaultExtraKey,
		registry: NewRegistry(),
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the CLI name.
func (c *CLI) Name() string { return c.name }

// ExtraKey returns the reserved extra-tokens key.
func (c *CLI) ExtraKey() string { return c.extraKey }

// Registry returns the CLI's command registry.
func (c *CLI) Registry() *Registry { return c.registry }

// Command returns a binding func that registers fn under name and returns
// it unchanged. Unrecognized tokens are fatal for commands bound this way.
func (c *CLI) Command(name string, args Args) func(Func) Func {
	return c.command(name, args, false)
}

// CommandWithExtra is Command, but unrecognized tokens are collected under
// the reserved extra key instead of failing.
func (c *CLI) CommandWithExtra(name string, args Args) func(Func) Func {
	return c.command(name, args, true)
}

func (c *CLI) command(name string, args Args, allowExtra bool) func(Func) Func {
	return func(fn Func) Func {
		for param := range args {
			if !hasParam(fn.Params, param) {
				panic(fmt.Sprintf("decli: command %q: override for unknown parameter %q", name, param))
			}
		}
		descs := make([]argspec.Descriptor, 0, len(fn.Params))
		for _, p := range fn.Params {
			ov := args[p.Name]
			conv := ov.Convert
			if tc, ok := c.converters[p.Type.Key()]; ok {
				conv = tc
			}
			d, err := argspec.Resolve(p.Name, p.Type, argspec.ResolveOpts{
				Option:  ov.Option,
				Short:   ov.Short,
				Help:    ov.Help,
				Default: p.Default,
				Convert: conv,
			})
			if err != nil {
				// Registration happens at program start; a type the
				// resolver cannot reduce is a programming error.
				panic(fmt.Sprintf("decli: command %q: %v", name, err))
			}
			d.Help = strings.TrimSpace(fmt.Sprintf("(%s) %s", p.Type.Key(), ov.Help))
			descs = append(descs, d)
		}
		c.registry.Register(&Command{
			Name:        name,
			Func:        fn,
			Args:        descs,
			Description: fn.Doc,
			AllowExtra:  allowExtra,
		})
		return fn
	}
}

func hasParam(params []Param, name string) bool {
	for _, p := range params {
		if p.Name == name {
			return true
		}
	}
	return false
}
