// Package search implements informed best-first (A*) search over immutable
// states, with a min-f frontier and a best-g visited memo.
package search

import (
	"github.com/sirupsen/logrus"
	tally "github.com/uber-go/tally/v4"
	"golang.org/x/exp/constraints"
)

// Node is one vertex of a search space. Implementations must be immutable
// value objects: Expand derives children without touching the receiver.
// Key is the canonical identity consulted by the visited memo; two nodes
// with equal keys are interchangeable for search purposes.
type Node[S any, TCost constraints.Integer | constraints.Float] interface {
	// Cost is g(n), the cost accumulated from the root.
	Cost() TCost
	// Heuristic is h(n), the estimated cost to reach a goal.
	Heuristic() TCost
	// Terminal reports whether the node is a goal.
	Terminal() bool
	// Expand generates the successor nodes. Empty for goals.
	Expand() []S
	// Key is the canonical identity for the visited memo.
	Key() string
}

// Status is the terminal outcome of a search.
type Status int

const (
	// Goal means a terminal node was reached; Result.State holds it.
	Goal Status = iota
	// Exhausted means the frontier emptied first; Result.State holds the
	// root as a sentinel. For finite assignment problems this signals a
	// modeling bug upstream, not a condition to retry.
	Exhausted
)

func (s Status) String() string {
	if s == Goal {
		return "goal"
	}
	return "exhausted"
}

// Result is the outcome of one Solve call, with expansion counters for
// reporting and tests.
type Result[S any, TCost constraints.Integer | constraints.Float] struct {
	State     S
	Status    Status
	Cost      TCost
	Expanded  int
	Generated int
	Pruned    int
}

type options struct {
	log           logrus.FieldLogger
	scope         tally.Scope
	meld          bool
	progressEvery int
}

type Option func(*options)

// WithLogger routes progress logging to the given logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) { o.log = log }
}

// WithMetrics emits nodes_expanded, nodes_generated and nodes_pruned
// counters to the given scope.
func WithMetrics(scope tally.Scope) Option {
	return func(o *options) { o.scope = scope }
}

// WithMeldFrontier swaps the binary-heap frontier for the randomized meld
// tree. Equal-cost results, different constant factors.
func WithMeldFrontier() Option {
	return func(o *options) { o.meld = true }
}

// WithProgressEvery logs a debug progress line every n expansions. Zero
// disables progress logging.
func WithProgressEvery(n int) Option {
	return func(o *options) { o.progressEvery = n }
}

// Priorities pack f into the high bits and a push sequence number into the
// low 32, so equal-f nodes pop in insertion order. Costs must stay below
// 2^31; validated scheduling instances are orders of magnitude smaller.
const sequenceBits = 32

// Solve runs best-first search from root until a terminal node is popped or
// the frontier empties. Single-threaded; the frontier and memo live and die
// inside this call.
//
// A popped node is expanded only when its key is absent from the memo or
// recorded with a strictly worse g; the memo entry is (re)written on
// expansion. That collapses the many assignment orders reaching the same
// state identity into one expansion.
func Solve[S Node[S, TCost], TCost constraints.Integer | constraints.Float](root S, opts ...Option) Result[S, TCost] {
	o := options{
		log:           logrus.StandardLogger(),
		scope:         tally.NoopScope,
		progressEvery: 100000,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var front frontier[S]
	if o.meld {
		front = newMeldFrontier[S]()
	} else {
		front = newHeapFrontier[S]()
	}
	expandedCtr := o.scope.Counter("nodes_expanded")
	generatedCtr := o.scope.Counter("nodes_generated")
	prunedCtr := o.scope.Counter("nodes_pruned")

	var seq uint32
	push := func(node S) {
		f := node.Cost() + node.Heuristic()
		front.Push(node, int64(f)<<sequenceBits|int64(seq))
		seq++
	}
	push(root)

	closed := make(map[string]TCost)
	res := Result[S, TCost]{State: root, Status: Exhausted}
	for front.Len() > 0 {
		node, priority := front.Pop()
		if node.Terminal() {
			res.State = node
			res.Status = Goal
			res.Cost = node.Cost()
			return res
		}
		g := node.Cost()
		if best, seen := closed[node.Key()]; seen && best <= g {
			res.Pruned++
			prunedCtr.Inc(1)
			continue
		}
		closed[node.Key()] = g
		res.Expanded++
		expandedCtr.Inc(1)

		children := node.Expand()
		res.Generated += len(children)
		generatedCtr.Inc(int64(len(children)))
		for _, child := range children {
			push(child)
		}

		if o.progressEvery > 0 && res.Expanded%o.progressEvery == 0 {
			o.log.WithFields(logrus.Fields{
				"expanded": res.Expanded,
				"frontier": front.Len(),
				"f":        priority >> sequenceBits,
			}).Debug("search progress")
		}
	}
	// Frontier drained with no goal. Unreachable for any non-empty finite
	// task list; surfaced distinctly rather than conflated with success.
	res.Cost = root.Cost()
	return res
}
