// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/bitmark-inc/avltree/soak"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "start", "run", "config-test", "cfg":
		return false // defer processing until configuration is read

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [--define=NAME=VALUE...] [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convenience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")
	}

	// indicate processing complete and program should terminate
	return true
}

// configuration command handler
//
// commands that only inspect the configuration
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := arguments[0]

	switch command {
	case "start", "run":
		return false // continue processing

	case "config-test", "cfg":
		data, err := json.MarshalIndent(options, "", "  ")
		if nil != err {
			fmt.Printf("configuration error: %s\n", err)
			return true
		}
		fmt.Printf("configuration: %s\n", data)

	default:
		fmt.Printf("error: no such command: %q\n", command)
	}

	return true
}

// summary of a completed run
func printResult(w io.Writer, elapsed time.Duration, r soak.Result) {
	fmt.Fprintf(w, "elapsed:    %s\n", elapsed)
	fmt.Fprintf(w, "operations: %d\n", r.Operations)
	fmt.Fprintf(w, "inserts:    %d\n", r.Inserts)
	fmt.Fprintf(w, "overwrites: %d\n", r.Overwrites)
	fmt.Fprintf(w, "deletes:    %d\n", r.Deletes)
	fmt.Fprintf(w, "misses:     %d\n", r.Misses)
	fmt.Fprintf(w, "checks:     %d\n", r.Checks)
	fmt.Fprintf(w, "failures:   %d\n", r.Failures)
	if seconds := elapsed.Seconds(); seconds > 0 {
		fmt.Fprintf(w, "rate:       %.0f ops/s\n", float64(r.Operations)/seconds)
	}
}
