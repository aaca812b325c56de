// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run a set of long running goroutines that all
// stop when shut down
package background

import (
	"sync"
)

// Process - a background process runs until its shutdown channel
// is closed, or it may return early of its own accord
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a running set of processes
type T struct {
	shutdown chan struct{}
	finished chan struct{}
	once     sync.Once
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	t := &T{
		shutdown: make(chan struct{}),
		finished: make(chan struct{}),
	}

	wg := sync.WaitGroup{}
	wg.Add(len(processes))

	// start each background
	for _, p := range processes {
		go func(p Process) {
			p.Run(args, t.shutdown)
			wg.Done()
		}(p)
	}

	go func() {
		wg.Wait()
		close(t.finished)
	}()

	return t
}

// Finished - closed once every process has returned
func (t *T) Finished() <-chan struct{} {
	return t.finished
}

// Stop - stop a set of background processes and wait for them to
// return, safe to call more than once
func (t *T) Stop() {
	t.once.Do(func() {
		close(t.shutdown)
	})
	<-t.finished
}
