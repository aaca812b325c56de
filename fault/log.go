// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
//
// the logger must already be initialised
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
// prefixed by the caller's location
func Criticalf(format string, arguments ...interface{}) {
	internalCriticalf(withCaller(format, arguments)...)
}

// Panicf - panic with a formatted message, logging it first
func Panicf(format string, arguments ...interface{}) {
	a := withCaller(format, arguments)
	internalCriticalf(a...)
	panic(fmt.Sprintf(a[0].(string), a[1:]...))
}

// PanicWithError - final panic
func PanicWithError(message string, err error) {
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	internalCriticalf("%s", s)
	if nil != log {
		time.Sleep(100 * time.Millisecond) // to allow logging output
	}
	panic(s)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	PanicWithError(message, err)
}

// internal: format as first element then arguments, two levels up
// is the caller of the exported function
func withCaller(format string, arguments []interface{}) []interface{} {
	if _, file, line, ok := runtime.Caller(2); ok {
		a := make([]interface{}, 3, 3+len(arguments))
		a[0] = "(%q:%d) " + format
		a[1] = file
		a[2] = line
		return append(a, arguments...)
	}
	a := make([]interface{}, 1, 1+len(arguments))
	a[0] = format
	return append(a, arguments...)
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(a ...interface{}) {
	format := a[0].(string)
	arguments := a[1:]
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
