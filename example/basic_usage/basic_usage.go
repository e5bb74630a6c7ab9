// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command basic_usage is a small demo CLI built with decli.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/declrun/decli/pkg/argspec"
	"github.com/declrun/decli/pkg/decli"
)

func main() {
	cli := decli.New("demo", decli.WithHelp("Demo of declarative command registration."))

	cli.Command("greet", decli.Args{
		"name":  {Help: "who to greet"},
		"shout": {Option: "--shout", Short: "-s", Help: "uppercase the greeting"},
		"times": {Option: "--times", Help: "how many times"},
	})(decli.Func{
		Doc: "Print a greeting",
		Params: []decli.Param{
			{Name: "name", Type: argspec.String()},
			{Name: "shout", Type: argspec.Bool()},
			{Name: "times", Type: argspec.Int(), Default: argspec.DefaultOf(1)},
		},
		Run: func(v decli.Values) error {
			msg := "hello " + v.String("name")
			if v.Bool("shout") {
				msg = strings.ToUpper(msg)
			}
			for i := 0; i < v.Int("times"); i++ {
				fmt.Println(msg)
			}
			return nil
		},
	})

	cli.Command("build", decli.Args{
		"src":  {Help: "source file"},
		"out":  {Option: "--out", Short: "-o", Help: "output path"},
		"mode": {Option: "--mode", Help: "build mode"},
	})(decli.Func{
		Doc: "Pretend to build something",
		Params: []decli.Param{
			{Name: "src", Type: argspec.PathT()},
			{Name: "out", Type: argspec.Optional(argspec.PathT()), Default: argspec.DefaultOf(argspec.Path("a.out"))},
			{Name: "mode", Type: argspec.Literal("debug", "release"), Default: argspec.DefaultOf("debug")},
		},
		Run: func(v decli.Values) error {
			fmt.Printf("building %s -> %s (%s)\n", v.Path("src"), v.Path("out"), v.String("mode"))
			return nil
		},
	})

	cli.Command("sum", decli.Args{
		"n": {Option: "--n", Help: "numbers to add"},
	})(decli.Func{
		Doc: "Add numbers",
		Params: []decli.Param{
			{Name: "n", Type: argspec.Sequence(argspec.Int()), Default: argspec.DefaultOf([]any{})},
		},
		Run: func(v decli.Values) error {
			total := 0
			for _, n := range v.List("n") {
				total += n.(int)
			}
			fmt.Println(total)
			return nil
		},
	})

	cli.CommandWithExtra("exec", decli.Args{
		"prog": {Help: "program to run"},
	})(decli.Func{
		Doc: "Echo a program invocation, passing unknown tokens through",
		Params: []decli.Param{
			{Name: "prog", Type: argspec.String()},
		},
		Run: func(v decli.Values) error {
			fmt.Println(v.String("prog"), strings.Join(v.Strings(cli.ExtraKey()), " "))
			return nil
		},
	})

	if err := cli.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
