package core

import "golang.org/x/sync/errgroup"

// Partition splits [0, n) into at most workers contiguous ranges and runs fn
// on each range in its own goroutine. It returns after every range finished,
// so writes made by fn are visible to the caller. The split is static: the
// same n and workers always produce the same ranges.
func Partition(n, workers int, fn func(lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		return fn(0, n)
	}

	var g errgroup.Group
	chunk := n / workers
	extra := n % workers
	lo := 0
	for w := 0; w < workers; w++ {
		hi := lo + chunk
		if w < extra {
			hi++
		}
		start, end := lo, hi
		g.Go(func() error {
			return fn(start, end)
		})
		lo = hi
	}
	return g.Wait()
}
