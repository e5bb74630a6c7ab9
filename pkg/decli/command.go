// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decli

import "github.com/declrun/decli/pkg/argspec"

// Command is a registered command: created once at registration, never
// mutated, read on every dispatch.
type Command struct {
	Name        string
	Func        Func
	Args        []argspec.Descriptor
	Description string
	AllowExtra  bool
}
