// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decli

import "github.com/declrun/decli/pkg/argspec"

// Values is the parsed result of one invocation: parameter name to typed
// value, plus the reserved extra key when the command allows extras.
type Values map[string]any

// String returns the value under name as a string, or "".
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Int returns the value under name as an int, or 0.
func (v Values) Int(name string) int {
	n, _ := v[name].(int)
	return n
}

// Float returns the value under name as a float64, or 0.
func (v Values) Float(name string) float64 {
	f, _ := v[name].(float64)
	return f
}

// Bool returns the value under name as a bool, or false.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Path returns the value under name as an argspec.Path, or "".
func (v Values) Path(name string) argspec.Path {
	p, _ := v[name].(argspec.Path)
	return p
}

// List returns the collected occurrences of a repeated argument, in
// arrival order, or nil.
func (v Values) List(name string) []any {
	l, _ := v[name].([]any)
	return l
}

// Strings returns the value under name as a string slice; in particular
// the extra-tokens list.
func (v Values) Strings(name string) []string {
	l, _ := v[name].([]string)
	return l
}
