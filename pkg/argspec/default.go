// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argspec

// Default is the tri-state default of a parameter: unset (the zero value,
// meaning the argument is required), an explicit nil, or an explicit
// value. Unset and explicit nil are distinct states; collapsing them would
// lose the required-vs-optional distinction.
type Default struct {
	set   bool
	value any
}

// NoDefault returns the "no default" sentinel. It is also the zero value.
func NoDefault() Default { return Default{} }

// DefaultOf returns an explicit default, including DefaultOf(nil).
func DefaultOf(v any) Default { return Default{set: true, value: v} }

// IsSet reports whether an explicit default exists.
func (d Default) IsSet() bool { return d.set }

// Value returns the explicit default, or nil when unset.
func (d Default) Value() any { return d.value }
