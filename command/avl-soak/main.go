// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/soak"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "define", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'D'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	variables := make(map[string]string)
	for _, v := range options["define"] {
		s := strings.SplitN(v, "=", 2)
		if 2 != len(s) || "" == s[0] {
			exitwithstatus.Message("%s: define: %q is not in the form: NAME=VALUE", program, v)
		}
		variables[s[0]] = s[1]
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands only inspect the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %+v", theConfiguration)

	quiet := len(options["quiet"]) > 0
	verbose := len(options["verbose"]) > 0 && !quiet

	// each worker owns an independent tree
	workers := make([]*soak.Worker, theConfiguration.Workers)
	processes := make(background.Processes, len(workers))
	for i := range workers {
		w, err := soak.NewWorker(i, avl.New(), logger.New(fmt.Sprintf("soak-%d", i)), theConfiguration.Soak)
		if nil != err {
			log.Criticalf("worker: %d  create error: %s", i, err)
			exitwithstatus.Message("%s: worker create error: %s", program, err)
		}
		workers[i] = w
		processes[i] = w
	}

	log.Infof("starting: %d workers", len(workers))
	if verbose {
		fmt.Printf("starting: %d workers\n", len(workers))
	}
	started := time.Now()
	p := background.Start(processes, nil)

	// wait for completion, time limit or a signal
	var timeout <-chan time.Time
	if theConfiguration.Duration > 0 {
		timeout = time.After(time.Duration(theConfiguration.Duration) * time.Second)
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-p.Finished():
		log.Info("all workers completed")
	case <-timeout:
		log.Info("time limit reached")
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
	}
	signal.Stop(ch)

	log.Info("stopping workers…")
	p.Stop()

	total := soak.Total(workers)
	elapsed := time.Since(started)
	log.Infof("elapsed: %s  result: %+v", elapsed, total)
	allocated, free := avl.PoolStatistics()
	log.Debugf("node pool: allocated: %d  free: %d", allocated, free)

	if !quiet {
		printResult(os.Stdout, elapsed, total)
	}

	if 0 != total.Failures {
		log.Criticalf("failures: %d", total.Failures)
		exitwithstatus.Message("%s: soak failed, see log for details", program)
	}
}
