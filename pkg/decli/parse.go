// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/shayne/yargs"

	"github.com/declrun/decli/pkg/argspec"
)

// Parse runs one command's descriptors over tokens and returns the bound
// values. Flag tokens are consumed by the yargs backend; leftover tokens
// fill positional slots in descriptor order and anything beyond that is
// an extra. Extras fail the parse unless allowExtra is set, in which case
// they are returned under the CLI's reserved extra key.
func (c *CLI) Parse(tokens []string, descs []argspec.Descriptor, allowExtra bool) (Values, error) {
	specs := make(map[string]yargs.ConsumeSpec)
	shortToLong := make(map[string]string)
	for _, d := range descs {
		if d.ID == c.extraKey {
			continue
		}
		if d.Positional() && !d.IsFlag {
			continue
		}
		long := flagName(d)
		kind := reflect.String
		switch {
		case d.IsFlag:
			kind = reflect.Bool
		case d.Repeat:
			kind = reflect.Slice
		}
		specs[long] = yargs.ConsumeSpec{Kind: kind}
		if d.Short != "" {
			shortToLong[strings.TrimLeft(d.Short, "-")] = long
		}
	}
	// The backend trims dashes, so a short that spells the same name as a
	// long flag already parses under it; rewriting it would also hijack
	// tokens meant for that long flag.
	for short := range shortToLong {
		if _, ok := specs[short]; ok {
			delete(shortToLong, short)
		}
	}

	// Short spellings are rewritten to their long form up front, so
	// interleaved occurrences of both spellings collect under one key in
	// token order.
	remaining, seen := yargs.ConsumeFlagsBySpec(longForm(tokens, shortToLong), specs)

	var positionals []argspec.Descriptor
	for _, d := range descs {
		if d.ID != c.extraKey && d.Positional() && !d.IsFlag {
			positionals = append(positionals, d)
		}
	}

	// Leftover tokens: flag-shaped ones are unknown flags, the rest fill
	// positional slots in declared order. Everything after "--" is
	// positional regardless of shape.
	posRaw := make(map[string]string)
	extras := []string{}
	next := 0
	literal := false
	for _, tok := range remaining {
		if !literal && tok == "--" {
			literal = true
			continue
		}
		if !literal && looksLikeFlag(tok) {
			extras = append(extras, tok)
			continue
		}
		if next < len(positionals) {
			posRaw[positionals[next].ID] = tok
			next++
		} else {
			extras = append(extras, tok)
		}
	}
	if len(extras) > 0 && !allowExtra {
		return nil, &UnknownArgsError{Args: extras}
	}

	vals := make(Values, len(descs))
	for _, d := range descs {
		if d.ID == c.extraKey {
			continue
		}
		if d.IsFlag {
			occ := seen[flagName(d)]
			if len(occ) == 0 {
				vals[d.ID] = false
				continue
			}
			// Bare occurrences record "true"; an explicit "--flag=false"
			// is honored.
			b, err := strconv.ParseBool(occ[len(occ)-1])
			if err != nil {
				return nil, &InvalidValueError{
					ID:    d.ID,
					Value: occ[len(occ)-1],
					Err:   fmt.Errorf("invalid bool value %q", occ[len(occ)-1]),
				}
			}
			vals[d.ID] = b
			continue
		}
		var raw []string
		if d.Positional() {
			if s, ok := posRaw[d.ID]; ok {
				raw = []string{s}
			}
		} else {
			raw = seen[flagName(d)]
		}
		if len(raw) == 0 {
			if d.Default.IsSet() {
				vals[d.ID] = d.Default.Value()
				continue
			}
			return nil, &MissingArgError{ID: d.ID, Option: d.Option}
		}
		if d.Repeat {
			items := make([]any, 0, len(raw))
			for _, s := range raw {
				v, err := coerce(d, s)
				if err != nil {
					return nil, err
				}
				items = append(items, v)
			}
			vals[d.ID] = items
			continue
		}
		// Repeated occurrences of a single-valued option: last one wins.
		v, err := coerce(d, raw[len(raw)-1])
		if err != nil {
			return nil, err
		}
		vals[d.ID] = v
	}
	if allowExtra {
		vals[c.extraKey] = extras
	}
	return vals, nil
}

// coerce converts one raw token and enforces the choice set.
func coerce(d argspec.Descriptor, s string) (any, error) {
	v, err := d.Convert(s)
	if err != nil {
		return nil, &InvalidValueError{ID: d.ID, Value: s, Err: err}
	}
	if len(d.Choices) > 0 && !containsChoice(d.Choices, v) {
		return nil, &InvalidChoiceError{ID: d.ID, Value: v, Choices: d.Choices}
	}
	return v, nil
}

func containsChoice(choices []any, v any) bool {
	for _, c := range choices {
		if c == v {
			return true
		}
	}
	return false
}

// flagName is the bare backend key for a flagged descriptor. Presence
// flags declared without an explicit option are exposed under their
// parameter name.
func flagName(d argspec.Descriptor) string {
	if d.Option != "" {
		return strings.TrimLeft(d.Option, "-")
	}
	return d.ID
}

// longForm rewrites short flag spellings ("-c", "-c=5") to their long
// form. Tokens at and after the "--" separator are left untouched.
func longForm(tokens []string, shortToLong map[string]string) []string {
	if len(shortToLong) == 0 {
		return tokens
	}
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == "--" {
			out = append(out, tokens[i:]...)
			break
		}
		if strings.HasPrefix(tok, "-") {
			name := strings.TrimLeft(tok, "-")
			value := ""
			if idx := strings.Index(name, "="); idx != -1 {
				value = name[idx:]
				name = name[:idx]
			}
			if long, ok := shortToLong[name]; ok {
				out = append(out, "--"+long+value)
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}

// looksLikeFlag reports whether a leftover token is an unknown flag
// rather than a positional value. Negative numbers are values.
func looksLikeFlag(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' {
		return false
	}
	if _, err := strconv.ParseFloat(tok, 64); err == nil {
		return false
	}
	return true
}
