// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - pacing of repeated operations
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/fault"
)

// New - limiter for a number of operations per second with a burst
// of one, a zero rate gives a nil limiter meaning no limit
func New(perSecond float64) (*rate.Limiter, error) {
	if perSecond < 0 {
		return nil, fault.ErrInvalidRate
	}
	if 0 == perSecond {
		return nil, nil
	}
	return rate.NewLimiter(rate.Limit(perSecond), 1), nil
}

// Limit - limiting for a single operation
//
// returns false if shutdown was signalled while waiting
func Limit(limiter *rate.Limiter, shutdown <-chan struct{}) (bool, error) {
	return LimitN(limiter, 1, shutdown)
}

// LimitN - limiting for a batch of operations
func LimitN(limiter *rate.Limiter, count int, shutdown <-chan struct{}) (bool, error) {
	if nil == limiter {
		return true, nil
	}
	if count <= 0 {
		return true, fault.ErrInvalidCount
	}

	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return true, fault.ErrRateLimiting
	}

	delay := r.Delay()
	if delay <= 0 {
		return true, nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-shutdown:
		r.Cancel()
		return false, nil
	case <-timer.C:
		return true, nil
	}
}
