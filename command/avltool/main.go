// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "avltool"
	app.Usage = "replay operations against an AVL tree"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "apply operations from the command line",
			ArgsUsage: "OP...\n   OP: +KEY, +KEY=VALUE or -KEY",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "numeric, n",
					Usage: " keys are integers",
				},
				cli.BoolFlag{
					Name:  "print, p",
					Usage: " print the final tree",
				},
			},
			Action: runRun,
		},
		{
			Name:      "file",
			Usage:     "apply operations from a file, one per line",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*operations `FILE`, '#' starts a comment",
				},
				cli.BoolFlag{
					Name:  "numeric, n",
					Usage: " keys are integers",
				},
				cli.BoolFlag{
					Name:  "print, p",
					Usage: " print the final tree",
				},
			},
			Action: runFile,
		},
		{
			Name:      "random",
			Usage:     "insert and delete random integer keys, report the height",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 1000,
					Usage: " number of distinct keys `COUNT`",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 0,
					Usage: " random `SEED`, 0 => time based",
				},
			},
			Action: runRandom,
		},
		{
			Name:  "version",
			Usage: "display avltool version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
