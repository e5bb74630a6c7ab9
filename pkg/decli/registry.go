// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decli

// Registry is an insertion-ordered name-to-command store. It is owned by
// a CLI value: written during the registration phase, read-only during
// dispatch.
type Registry struct {
	order []string
	cmds  map[string]*Command
}

func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register stores cmd, silently overwriting any prior command with the
// same name. An overwritten name keeps its original ordering slot.
func (r *Registry) Register(cmd *Command) {
	if _, exists := r.cmds[cmd.Name]; !exists {
		r.order = append(r.order, cmd.Name)
	}
	r.cmds[cmd.Name] = cmd
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// All returns every command in registration order. Used for presentation
// only.
func (r *Registry) All() []*Command {
	cmds := make([]*Command, 0, len(r.order))
	for _, name := range r.order {
		cmds = append(cmds, r.cmds[name])
	}
	return cmds
}

// Len returns the number of registered commands.
func (r *Registry) Len() int { return len(r.order) }
