// SPDX-License-Identifier: MIT
// Row-block scheduling for the product kernels.
//
// Determinism: blocks partition the output rows; each row is written by one
// goroutine using the same inner loop order as the sequential path.

package matrix

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the minimum number of multiply-adds before a kernel
// fans out. Below it goroutine setup costs more than it saves.
const parallelThreshold = 1 << 15

var workerCount atomic.Int64

func init() {
	workerCount.Store(int64(runtime.GOMAXPROCS(0)))
}

// SetWorkers bounds the number of goroutines used by Mul, MulTransA, MulTransB
// and CSR.SpMM. n ≤ 0 restores the default (GOMAXPROCS). It returns the
// previous value.
func SetWorkers(n int) int {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	return int(workerCount.Swap(int64(n)))
}

// Workers reports the current worker bound.
func Workers() int {
	return int(workerCount.Load())
}

// forRowBlocks runs fn over [0,rows) split into contiguous blocks and
// returns the first error any block reports.
// cost is the approximate number of multiply-adds for the whole kernel.
func forRowBlocks(rows, cost int, fn func(lo, hi int) error) error {
	w := Workers()
	if w <= 1 || rows < 2 || cost < parallelThreshold {
		return fn(0, rows)
	}
	if w > rows {
		w = rows
	}
	block := (rows + w - 1) / w

	var g errgroup.Group
	g.SetLimit(w)
	for lo := 0; lo < rows; lo += block {
		hi := lo + block
		if hi > rows {
			hi = rows
		}
		g.Go(func() error {
			return fn(lo, hi)
		})
	}

	return g.Wait()
}
