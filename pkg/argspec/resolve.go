// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argspec

import "fmt"

// UnsupportedTypeError is returned when a declared type cannot be reduced
// to a known primitive, flag, choice set, sequence, or union of those. It
// surfaces at registration time, not at dispatch time.
type UnsupportedTypeError struct {
	Param string
	Type  Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type for %q: %s", e.Param, e.Type.Key())
}

// ResolveOpts carries the author-supplied customization and the declared
// default into resolution.
type ResolveOpts struct {
	// Option is the long flag to expose; empty means positional.
	Option string
	// Short is the optional short flag.
	Short string
	// Help is the raw user help text.
	Help string
	// Default is the parameter's declared default (tri-state).
	Default Default
	// Convert, when non-nil, bypasses type resolution entirely: the
	// declared type is recorded for documentation only.
	Convert Convert
}

// baseKinds is the primitive scan order for sequence element types.
var baseKinds = []Kind{KindString, KindInt, KindFloat, KindPath}

// Resolve reduces a declared type to a Descriptor. Cases are tried in a
// fixed order and the first match wins; a type outside the closed set is
// a hard UnsupportedTypeError. Resolve is pure: no side effects, same
// output for the same inputs.
func Resolve(param string, declared Type, opts ResolveOpts) (Descriptor, error) {
	d := Descriptor{
		ID:       param,
		Option:   opts.Option,
		Short:    opts.Short,
		Help:     opts.Help,
		Default:  opts.Default,
		TypeName: declared.Key(),
	}

	if opts.Convert != nil {
		d.Convert = opts.Convert
		return d, nil
	}

	if conv, ok := primitiveConvert(declared.Kind()); ok {
		d.Convert = conv
		return d, nil
	}

	switch declared.Kind() {
	case KindBool:
		// Presence-only flag. A declared default is accepted but not
		// honored: the flag always defaults to false.
		d.IsFlag = true
		d.Default = DefaultOf(false)
		d.Convert = nil
		return d, nil

	case KindLiteral:
		choices := declared.Choices()
		if len(choices) == 0 {
			break
		}
		d.Choices = choices
		d.Convert = choiceConvert(choices[0])
		return d, nil

	case KindSequence:
		d.Repeat = true
		d.Convert = sequenceElemConvert(declared.Args())
		return d, nil

	case KindUnion:
		var rest []Type
		for _, v := range declared.Variants() {
			if v.Kind() != KindNone {
				rest = append(rest, v)
			}
		}
		if len(rest) == 0 {
			break
		}
		// Only the first non-none variant is resolved; the shorthand is
		// not carried into the recursion.
		inner, err := Resolve(param, rest[0], ResolveOpts{
			Option:  opts.Option,
			Help:    opts.Help,
			Default: opts.Default,
		})
		if err != nil {
			return Descriptor{}, err
		}
		inner.TypeName = declared.Key()
		return inner, nil
	}

	return Descriptor{}, &UnsupportedTypeError{Param: param, Type: declared}
}

// sequenceElemConvert picks the element converter for a sequence type by
// scanning its type arguments for the first known primitive, in the fixed
// base order, defaulting to string.
func sequenceElemConvert(args []Type) Convert {
	for _, k := range baseKinds {
		for _, a := range args {
			if a.Kind() == k {
				conv, _ := primitiveConvert(k)
				return conv
			}
		}
	}
	return convertString
}
