// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argspec models declared argument types and resolves them into
// backend-agnostic argument descriptors.
//
// A command's parameters are declared with Type values built from the
// constructors below. Resolve reduces a declared type to a Descriptor: the
// flag names, converter, default, multiplicity and choice set that the
// parser needs. Resolution is a fixed, ordered list of cases with a
// terminal failure case; anything outside the closed set is an
// UnsupportedTypeError, never a silent fallback.
package argspec

import "strings"

// Kind enumerates the closed set of declared type shapes.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindPath
	KindBool
	KindLiteral
	KindSequence
	KindUnion
	KindNone
	KindNamed
)

// Path is the value produced for filesystem-path arguments.
type Path string

// Type is a declared argument type: a tagged variant over the kinds above.
// The zero value is the string type.
type Type struct {
	kind     Kind
	variants []Type // union members
	args     []Type // sequence type arguments
	choices  []any  // literal options
	name     string // named types
}

func String() Type { return Type{kind: KindString} }
func Int() Type    { return Type{kind: KindInt} }
func Float() Type  { return Type{kind: KindFloat} }
func PathT() Type  { return Type{kind: KindPath} }
func Bool() Type   { return Type{kind: KindBool} }
func None() Type   { return Type{kind: KindNone} }

// Literal declares a fixed-choice type. The converter is inferred from the
// runtime type of the first choice.
func Literal(choices ...any) Type {
	return Type{kind: KindLiteral, choices: choices}
}

// Sequence declares a repeatable argument. The element converter is found
// by scanning the type arguments for the first known primitive, falling
// back to string.
func Sequence(args ...Type) Type {
	return Type{kind: KindSequence, args: args}
}

// Union declares a type with several variants. None variants are discarded
// during resolution and the first remaining variant wins.
func Union(variants ...Type) Type {
	return Type{kind: KindUnion, variants: variants}
}

// Optional is shorthand for Union(t, None()).
func Optional(t Type) Type { return Union(t, None()) }

// Named declares an opaque type the resolver cannot reduce on its own. It
// is only usable together with a converter (per-parameter or via the CLI
// converter table, matched by Key).
func Named(name string) Type { return Type{kind: KindNamed, name: name} }

func (t Type) Kind() Kind       { return t.kind }
func (t Type) Variants() []Type { return t.variants }
func (t Type) Args() []Type     { return t.args }
func (t Type) Choices() []any   { return t.choices }

// Key returns the canonical string form of the type. It doubles as the
// exact-match key of the converter table and as the type name shown in
// help text.
func (t Type) Key() string {
	switch t.kind {
	case KindString:
		return "str"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindPath:
		return "path"
	case KindBool:
		return "bool"
	case KindNone:
		return "none"
	case KindNamed:
		return t.name
	case KindLiteral:
		return "literal[" + joinKeys(literalKeys(t.choices)) + "]"
	case KindSequence:
		return "list[" + joinKeys(keysOf(t.args)) + "]"
	case KindUnion:
		if isOptional(t) {
			return "optional[" + firstNonNone(t.variants).Key() + "]"
		}
		return "union[" + joinKeys(keysOf(t.variants)) + "]"
	}
	return "unknown"
}

func (t Type) String() string { return t.Key() }

// isOptional reports whether a union is exactly one non-none variant plus
// at least one none variant.
func isOptional(t Type) bool {
	nonNone := 0
	none := 0
	for _, v := range t.variants {
		if v.kind == KindNone {
			none++
		} else {
			nonNone++
		}
	}
	return none > 0 && nonNone == 1
}

func firstNonNone(variants []Type) Type {
	for _, v := range variants {
		if v.kind != KindNone {
			return v
		}
	}
	return None()
}

func keysOf(types []Type) []string {
	keys := make([]string, 0, len(types))
	for _, t := range types {
		keys = append(keys, t.Key())
	}
	return keys
}

func literalKeys(choices []any) []string {
	keys := make([]string, 0, len(choices))
	for _, c := range choices {
		keys = append(keys, literalKey(c))
	}
	return keys
}

func joinKeys(keys []string) string { return strings.Join(keys, "|") }
