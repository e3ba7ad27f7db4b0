package sched

import "golang.org/x/sync/errgroup"

// Scheduler runs a batch of independent tasks — the R sibling bilinear
// products of one recursion node — and reports the first error any of
// them returned. Run must not return before every task it started has
// finished, so callers never race a partially-written scratch matrix;
// whether a failure stops tasks that haven't started yet is left to each
// implementation (see Sequential and Parallel below).
type Scheduler interface {
	Run(tasks ...func() error) error
}

// Sequential runs each task in program order, in the caller's goroutine,
// and stops at the first error without starting the remaining tasks. It is
// the spec's "Sequential" build mode: deterministic, zero scheduling
// overhead, and the natural choice for recursion levels too shallow or
// blocks too small to amortize goroutine creation.
type Sequential struct{}

// Run implements Scheduler.
func (Sequential) Run(tasks ...func() error) error {
	for _, task := range tasks {
		if err := task(); err != nil {
			return schedErrorf("Run", err)
		}
	}

	return nil
}

// Parallel starts every task as a goroutine under an errgroup.Group before
// blocking on the join — the DFS join barrier of spec §5. Unlike
// Sequential, every task is already running by the time one of them fails,
// so Run always waits for all of them to finish before returning. It is
// safe to nest: an inner recursion node's Parallel.Run spawns its own
// errgroup, so nested fan-out composes without a shared pool to contend
// over.
type Parallel struct{}

// Run implements Scheduler.
func (Parallel) Run(tasks ...func() error) error {
	var g errgroup.Group
	for _, task := range tasks {
		task := task
		g.Go(task)
	}
	if err := g.Wait(); err != nil {
		return schedErrorf("Run", err)
	}

	return nil
}
