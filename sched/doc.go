// Package sched provides the spawn/join abstraction the bilinear recursion
// driver uses for its sibling bilinear products (spec §5's DFS task
// parallelism: a node spawns its R siblings, joins on all of them, then
// runs output combination sequentially). Sequential executes siblings in
// program order; Parallel submits each to an errgroup.Group and blocks at
// Wait — the join barrier the driver needs before step 5 and before
// peeling.
package sched
