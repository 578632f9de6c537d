package pmc

import "pmcmax/search"

// Solve runs best-first search from the problem's root state. The result's
// Status distinguishes a complete schedule from frontier exhaustion; on
// exhaustion the root state is returned as the sentinel.
func (p *Problem) Solve(opts ...search.Option) search.Result[*State, int] {
	return search.Solve[*State, int](p.Root(), opts...)
}
