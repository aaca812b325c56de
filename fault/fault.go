// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceMismatch      = ProcessError("balance does not match sub-tree heights")
	ErrBalanceOutOfRange    = ProcessError("balance is outside -1..+1")
	ErrHeightExceedsBound   = ProcessError("tree height exceeds the AVL bound")
	ErrConfigNotTable       = InvalidError("configuration did not return a table")
	ErrContentMismatch      = ProcessError("tree content does not match expected content")
	ErrCountMismatch        = ProcessError("tree count does not match number of nodes")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidKeySpace      = InvalidError("key space must be positive")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidOperation     = InvalidError("invalid operation")
	ErrInvalidRate          = InvalidError("rate must not be negative")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidWorkers       = InvalidError("workers must be positive")
	ErrKeyOrder             = ProcessError("keys are not in strictly increasing order")
	ErrMissingOperations    = InvalidError("no operations given")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrParentLinkMismatch   = ProcessError("parent link does not match tree structure")
	ErrRateLimiting         = ProcessError("rate limiting")
	ErrRemainingNodes       = ProcessError("nodes remain after deleting every key")
	ErrRequiredFileName     = InvalidError("file name is required")
	ErrSubtreeCountMismatch = ProcessError("sub-tree node count does not match")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
