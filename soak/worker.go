// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
	"github.com/bitmark-inc/avltree/ratelimit"
)

// defaults for zero configuration values
const (
	DefaultCheckEvery    = 1000
	DefaultInsertPercent = 60
)

// Tree - the operations a worker needs from a tree
type Tree interface {
	Insert(key avl.Item, value interface{}) bool
	Delete(key avl.Item) interface{}
	Search(key avl.Item) (*avl.Node, int)
	Count() int
	Check() error
}

// Configuration - parameters for a single worker
type Configuration struct {
	KeySpace      int     `gluamapper:"key_space"`      // keys are 0 … KeySpace-1
	Operations    int     `gluamapper:"operations"`     // 0 => run until shutdown
	CheckEvery    int     `gluamapper:"check_every"`    // operations between full checks
	InsertPercent int     `gluamapper:"insert_percent"` // remainder are deletes
	Rate          float64 `gluamapper:"rate"`           // operations per second, 0 => unlimited
	Seed          int64   `gluamapper:"seed"`           // 0 => time based
}

// Result - counts of what a worker has done
type Result struct {
	Operations uint64
	Inserts    uint64
	Overwrites uint64
	Deletes    uint64
	Misses     uint64
	Checks     uint64
	Failures   uint64
}

// live counts, readable while the worker runs
type statistics struct {
	operations counter.Counter
	inserts    counter.Counter
	overwrites counter.Counter
	deletes    counter.Counter
	misses     counter.Counter
	checks     counter.Counter
	failures   counter.Counter
}

// Worker - one tree under test
type Worker struct {
	id      int
	tree    Tree
	log     *logger.L
	config  Configuration
	rng     *rand.Rand
	limiter *rate.Limiter
	shadow  map[item.Integer]int
	stats   statistics
}

// NewWorker - create a worker over an empty tree
func NewWorker(id int, tree Tree, log *logger.L, config Configuration) (*Worker, error) {
	if config.KeySpace <= 0 {
		return nil, fault.ErrInvalidKeySpace
	}
	if config.Operations < 0 || config.CheckEvery < 0 {
		return nil, fault.ErrInvalidCount
	}
	if config.InsertPercent < 0 || config.InsertPercent > 100 {
		return nil, fault.ErrInvalidCount
	}
	if 0 == config.CheckEvery {
		config.CheckEvery = DefaultCheckEvery
	}
	if 0 == config.InsertPercent {
		config.InsertPercent = DefaultInsertPercent
	}

	limiter, err := ratelimit.New(config.Rate)
	if nil != err {
		return nil, err
	}

	seed := config.Seed
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	seed += int64(id)

	return &Worker{
		id:      id,
		tree:    tree,
		log:     log,
		config:  config,
		rng:     rand.New(rand.NewSource(seed)),
		limiter: limiter,
		shadow:  make(map[item.Integer]int),
	}, nil
}

// Result - snapshot of the worker counts
func (w *Worker) Result() Result {
	return Result{
		Operations: w.stats.operations.Uint64(),
		Inserts:    w.stats.inserts.Uint64(),
		Overwrites: w.stats.overwrites.Uint64(),
		Deletes:    w.stats.deletes.Uint64(),
		Misses:     w.stats.misses.Uint64(),
		Checks:     w.stats.checks.Uint64(),
		Failures:   w.stats.failures.Uint64(),
	}
}

// Run - background process loop, stops on shutdown, after the
// configured number of operations or at the first failure
func (w *Worker) Run(args interface{}, shutdown <-chan struct{}) {
	w.log.Infof("worker: %d  start: %+v", w.id, w.config)

loop:
	for n := 1; 0 == w.config.Operations || n <= w.config.Operations; n += 1 {
		select {
		case <-shutdown:
			break loop
		default:
		}

		ok, err := ratelimit.Limit(w.limiter, shutdown)
		if nil != err {
			w.log.Errorf("worker: %d  rate limit error: %s", w.id, err)
			break loop
		}
		if !ok {
			break loop
		}

		if err := w.step(n); nil != err {
			w.fail(err)
			return
		}

		if 0 == n%w.config.CheckEvery {
			if err := w.verify(); nil != err {
				w.fail(err)
				return
			}
		}
	}

	if err := w.verify(); nil != err {
		w.fail(err)
		return
	}
	w.log.Infof("worker: %d  finished: %+v", w.id, w.Result())
}

// one random insert or delete
func (w *Worker) step(n int) error {
	key := item.Integer(w.rng.Intn(w.config.KeySpace))
	_, exists := w.shadow[key]

	w.stats.operations.Increment()

	if w.rng.Intn(100) < w.config.InsertPercent {
		added := w.tree.Insert(key, n)
		w.shadow[key] = n

		if added == exists {
			return fault.ErrContentMismatch
		}
		if added {
			w.stats.inserts.Increment()
		} else {
			w.stats.overwrites.Increment()
		}
		return nil
	}

	value := w.tree.Delete(key)
	expected, ok := w.shadow[key]
	delete(w.shadow, key)

	if !ok {
		if nil != value {
			return fault.ErrContentMismatch
		}
		w.stats.misses.Increment()
		return nil
	}
	if value != expected {
		return fault.ErrContentMismatch
	}
	w.stats.deletes.Increment()
	return nil
}

// full comparison of tree against expected contents
func (w *Worker) verify() error {
	w.stats.checks.Increment()

	if err := w.tree.Check(); nil != err {
		return err
	}
	if w.tree.Count() != len(w.shadow) {
		return fault.ErrCountMismatch
	}
	for key, value := range w.shadow {
		node, _ := w.tree.Search(key)
		if nil == node || node.Value() != value {
			return fault.ErrContentMismatch
		}
	}
	w.log.Debugf("worker: %d  check passed with: %d items", w.id, len(w.shadow))
	return nil
}

func (w *Worker) fail(err error) {
	w.stats.failures.Increment()
	w.log.Criticalf("worker: %d  failed: %s  after: %+v", w.id, err, w.Result())
}

// Total - sum of the results of a set of workers
func Total(workers []*Worker) Result {
	total := Result{}
	for _, w := range workers {
		r := w.Result()
		total.Operations += r.Operations
		total.Inserts += r.Inserts
		total.Overwrites += r.Overwrites
		total.Deletes += r.Deletes
		total.Misses += r.Misses
		total.Checks += r.Checks
		total.Failures += r.Failures
	}
	return total
}
