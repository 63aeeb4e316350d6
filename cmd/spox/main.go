// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

// spox inspects ONNX models and the operators supported by the spox opset tables.
//
// Usage:
//
//	spox [-v=N] inspect [-values] [-nocolor] [-table=weekly] FILE...
//	spox [-v=N] opsets [-table=stable] [-domain=D]
//	spox [-v=N] example [-opset=17] [-o=mlp.onnx]
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"k8s.io/klog/v2"
)

// command is a subcommand of spox, with its own flags.
type command struct {
	name, args, description string
	flags                   *flag.FlagSet
	run                     func(args []string) error
}

var commands = []*command{inspectCommand, opsetsCommand, exampleCommand}

func usage() {
	out := flag.CommandLine.Output()
	_, _ = fmt.Fprintf(out, "Usage: %s [global flags] <command> [flags] [args]\n\nCommands:\n", os.Args[0])
	for _, cmd := range commands {
		_, _ = fmt.Fprintf(out, "  %-8s %s\n", cmd.name, cmd.description)
	}
	_, _ = fmt.Fprintf(out, "\nRun '%s <command> -help' for the flags of a command.\n\nGlobal flags:\n", os.Args[0])
	flag.PrintDefaults()
}

func findCommand(name string) *command {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd
		}
	}
	return nil
}

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		klog.Errorf("Missing command. See '%s -help'", os.Args[0])
		os.Exit(1)
	}
	cmd := findCommand(args[0])
	if cmd == nil {
		names := make([]string, len(commands))
		for ii, c := range commands {
			names[ii] = c.name
		}
		klog.Errorf("Unknown command %q, valid commands are: %s", args[0], strings.Join(names, ", "))
		os.Exit(1)
	}
	cmd.flags.Usage = func() {
		out := cmd.flags.Output()
		_, _ = fmt.Fprintf(out, "Usage: %s %s [flags] %s\n\n%s\n\nFlags:\n", os.Args[0], cmd.name, cmd.args,
			cmd.description)
		cmd.flags.PrintDefaults()
	}
	// Flags are set to flag.ExitOnError, so errors are handled by the package.
	_ = cmd.flags.Parse(args[1:])
	if err := cmd.run(cmd.flags.Args()); err != nil {
		klog.Errorf("%s: %+v", cmd.name, err)
		os.Exit(1)
	}
	klog.Flush()
}
