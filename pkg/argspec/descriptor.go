// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argspec

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// Convert coerces one raw command-line token into a typed value.
type Convert func(string) (any, error)

// Descriptor is the normalized, backend-agnostic shape of one resolved
// argument. It is what the parser projects into the token backend's
// grammar and what binds a parsed value back to its parameter.
type Descriptor struct {
	// ID is the stable key binding the parsed value to the parameter.
	// Unique within a command.
	ID string
	// Option is the long flag (e.g. "--verbose"). Empty means positional.
	Option string
	// Short is the optional short flag (e.g. "-v").
	Short string
	// Convert coerces raw tokens. Nil only for presence-only flags.
	Convert Convert
	// Default is the tri-state default; unset means required.
	Default Default
	// IsFlag marks a presence-only boolean: no value token is consumed
	// and the default is always false.
	IsFlag bool
	// Repeat allows the argument to be supplied multiple times, each
	// occurrence converted independently and collected in arrival order.
	Repeat bool
	// Choices restricts converted values to a fixed set.
	Choices []any
	// Help is the user help text. The registration layer prepends the
	// declared type name.
	Help string
	// TypeName is the declared type's canonical name, kept for help text
	// even when a converter bypassed resolution.
	TypeName string
}

// Positional reports whether the argument is bound by position rather
// than by flag.
func (d Descriptor) Positional() bool { return d.Option == "" }

// Required reports whether the argument must be supplied: no default and
// not a presence-only flag.
func (d Descriptor) Required() bool { return !d.Default.IsSet() && !d.IsFlag }

func convertString(s string) (any, error) { return s, nil }

func convertInt(s string) (any, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid int value %q", s)
	}
	return n, nil
}

func convertFloat(s string) (any, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid float value %q", s)
	}
	return f, nil
}

func convertPath(s string) (any, error) { return Path(filepath.Clean(s)), nil }

// primitiveConvert returns the converter for a terminal primitive kind.
func primitiveConvert(k Kind) (Convert, bool) {
	switch k {
	case KindString:
		return convertString, true
	case KindInt:
		return convertInt, true
	case KindFloat:
		return convertFloat, true
	case KindPath:
		return convertPath, true
	}
	return nil, false
}

// choiceConvert infers a converter from the runtime type of the first
// choice of a literal type.
func choiceConvert(first any) Convert {
	switch first.(type) {
	case int:
		return convertInt
	case float64:
		return convertFloat
	case Path:
		return convertPath
	default:
		return convertString
	}
}

func literalKey(choice any) string {
	switch v := choice.(type) {
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
