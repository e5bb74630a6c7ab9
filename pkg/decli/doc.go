// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decli builds flat command-line interfaces declaratively: a
// handler function plus a declared parameter signature becomes a named
// subcommand, and decli converts raw tokens into correctly typed values
// before invoking the handler.
//
// # Basic usage
//
//	cli := decli.New("tool", decli.WithHelp("A demo tool."))
//
//	greet := cli.Command("greet", decli.Args{
//	        "name": {Help: "Who to greet"},
//	})(decli.Func{
//	        Doc:    "Say hello.",
//	        Params: []decli.Param{{Name: "name", Type: argspec.String()}},
//	        Run: func(v decli.Values) error {
//	                fmt.Println("Hello,", v.String("name"))
//	                return nil
//	        },
//	})
//
//	if err := cli.Run(os.Args); err != nil { ... }
//
// Command returns a binding func that registers the command and hands the
// Func back unchanged, so the handler stays independently callable (greet
// above). Parameters without an Option are positional; boolean parameters
// become presence-only flags; sequence types may be repeated; literal
// types carry a fixed choice set.
//
// Token parsing is delegated to github.com/shayne/yargs: every descriptor
// is projected into that backend's flag grammar, the backend strips known
// flags, and decli folds what remains onto positional slots. Commands
// registered with CommandWithExtra collect unmatched tokens under the
// CLI's reserved extra key instead of failing.
package decli
