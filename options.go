package fastmatmul

import "github.com/vlarn/fastmatmul/sched"

// Options configures a single FastMatmul call.
type Options struct {
	scheduler sched.Scheduler
	x         float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultApproxX is the approximation parameter used when the selected
// algorithm is approximate and the caller supplies no WithApproxScale — the
// original's own default (spec §6.1).
const DefaultApproxX = 1e-8

// WithScheduler selects the DFS task-parallel scheduler FastMatmul uses to
// join a node's R recursive sub-products. Defaults to sched.Sequential{}.
func WithScheduler(s sched.Scheduler) Option {
	return func(o *Options) { o.scheduler = s }
}

// WithApproxScale sets the approximation parameter x for border-rank
// algorithms. Ignored by exact algorithms. Panics on x == 0: an
// approximate algorithm's scaling pass divides by x^d at exit, so a zero
// here is a programmer error, not a data-dependent one.
func WithApproxScale(x float64) Option {
	if x == 0 {
		panic("fastmatmul: WithApproxScale: x must be nonzero")
	}

	return func(o *Options) { o.x = x }
}

func gatherOptions(opts ...Option) Options {
	o := Options{scheduler: sched.Sequential{}, x: DefaultApproxX}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
