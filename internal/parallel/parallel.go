// Package parallel splits the row loops of the CPU kernels (Kronecker
// products, coordinate remaps, partial traces) across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config sets how a row loop is split.
type Config struct {
	Enabled      bool // false keeps every loop on the calling goroutine
	NumWorkers   int  // upper bound on goroutines per loop
	MinChunkSize int  // rows handed to one goroutine at minimum
}

// DefaultConfig uses one worker per CPU and enables splitting on
// multi-core machines only.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// Sequential runs every loop in index order on the caller.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// chunk returns the number of rows per goroutine for a loop of n rows, or
// 0 when the loop should stay on the caller.
func (c Config) chunk(n int) int {
	if !c.Enabled || c.NumWorkers <= 1 || n < c.MinChunkSize {
		return 0
	}
	return max((n+c.NumWorkers-1)/c.NumWorkers, c.MinChunkSize)
}

// For calls f once for every row index in [0, n). Calls may run
// concurrently, so f may only write output owned by its row.
func For(n int, f func(i int), cfg Config) {
	size := cfg.chunk(n)
	if size == 0 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				f(i)
			}
		}()
	}
	wg.Wait()
}

// ForGrid calls f for every (i, j) with i < outer and j < inner. The pair
// space is flattened before splitting, so a Kronecker product with few
// rows in its left factor still fans out over the right factor's rows.
func ForGrid(outer, inner int, f func(i, j int), cfg Config) {
	if inner == 0 {
		return
	}
	For(outer*inner, func(k int) {
		f(k/inner, k%inner)
	}, cfg)
}
