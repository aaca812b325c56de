// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/ratelimit"
)

func TestUnlimited(t *testing.T) {
	limiter, err := ratelimit.New(0)
	assert.Nil(t, err, "new error")
	assert.Nil(t, limiter, "zero rate limiter")

	for i := 0; i < 1000; i += 1 {
		ok, err := ratelimit.Limit(limiter, nil)
		assert.True(t, ok, "unlimited stopped")
		assert.Nil(t, err, "unlimited error")
	}
}

func TestNegativeRate(t *testing.T) {
	_, err := ratelimit.New(-1)
	assert.Equal(t, fault.ErrInvalidRate, err, "negative rate")
}

func TestPacing(t *testing.T) {
	limiter, err := ratelimit.New(100)
	assert.Nil(t, err, "new error")

	start := time.Now()
	for i := 0; i < 6; i += 1 {
		ok, err := ratelimit.Limit(limiter, nil)
		assert.True(t, ok, "stopped")
		assert.Nil(t, err, "limit error")
	}

	// first is immediate, then 10ms apart
	assert.True(t, time.Since(start) >= 40*time.Millisecond, "not paced")
}

func TestShutdownWhileWaiting(t *testing.T) {
	limiter, err := ratelimit.New(0.1)
	assert.Nil(t, err, "new error")

	shutdown := make(chan struct{})
	ok, _ := ratelimit.Limit(limiter, shutdown)
	assert.True(t, ok, "first call waits")

	close(shutdown)
	ok, err = ratelimit.Limit(limiter, shutdown)
	assert.False(t, ok, "shutdown ignored")
	assert.Nil(t, err, "shutdown error")
}

func TestBadCount(t *testing.T) {
	limiter, _ := ratelimit.New(10)
	_, err := ratelimit.LimitN(limiter, 0, nil)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")

	// more than the burst can never be satisfied
	_, err = ratelimit.LimitN(limiter, 5, nil)
	assert.Equal(t, fault.ErrRateLimiting, err, "count over burst")
}
