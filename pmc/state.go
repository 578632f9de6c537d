package pmc

import (
	"math"
	"slices"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Machine is one of the identical parallel machines. Load is the sum of the
// durations assigned to it so far.
type Machine struct {
	ID   int
	Load int
}

// Task is an indivisible unit of work with a fixed processing duration.
type Task struct {
	ID       int
	Duration int
}

// Assignment records that a task was placed on a machine.
type Assignment struct {
	TaskID    int
	MachineID int
}

// Problem holds the fixed data shared by every state of one search: the task
// durations, the machine count, and tuning options. States reference it
// instead of carrying their own copy.
type Problem struct {
	durations     map[int]int
	total         int
	machineCount  int
	zeroHeuristic bool
}

type ProblemOption func(*Problem)

// WithoutHeuristic drops the slack estimate so the search degenerates to
// uniform-cost (Dijkstra-style) expansion. Slower, but the result no longer
// depends on the heuristic's rounding behavior.
func WithoutHeuristic() ProblemOption {
	return func(p *Problem) { p.zeroHeuristic = true }
}

// NewProblem builds a problem from a machine count and an ordered duration
// list. Task ids are assigned 1-based from input order, machine ids 1..N.
// Input is assumed validated (see Instance.Validate).
func NewProblem(machines int, durations []int, opts ...ProblemOption) *Problem {
	p := &Problem{
		durations:    make(map[int]int, len(durations)),
		machineCount: machines,
	}
	for i, d := range durations {
		p.durations[i+1] = d
		p.total += d
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task returns the task with the given id, false if the id is unknown.
func (p *Problem) Task(id int) (Task, bool) {
	d, ok := p.durations[id]
	return Task{ID: id, Duration: d}, ok
}

func (p *Problem) Machines() int { return p.machineCount }

// TotalDuration is the duration sum over every task of the problem.
func (p *Problem) TotalDuration() int { return p.total }

// Root is the all-idle starting state: every machine at load zero, every
// task pending, empty history.
func (p *Problem) Root() *State {
	machines := make([]Machine, p.machineCount)
	for i := range machines {
		machines[i].ID = i + 1
	}
	pending := mapset.NewThreadUnsafeSet[int]()
	for id := range p.durations {
		pending.Add(id)
	}
	return &State{problem: p, machines: machines, pending: pending}
}

// State is an immutable partial (or complete) schedule: per-machine loads,
// the set of task ids not yet assigned, and the assignment history along the
// path from the root. States are never mutated after creation; Assign
// derives a fresh one.
type State struct {
	problem  *Problem
	machines []Machine
	pending  mapset.Set[int]
	history  []Assignment
}

// Assign places the pending task on the machine and returns the resulting
// state. When either id cannot be found the receiver is returned unchanged;
// callers drawing ids from the state itself never hit that path.
func (s *State) Assign(taskID, machineID int) *State {
	if !s.pending.Contains(taskID) {
		return s
	}
	idx := slices.IndexFunc(s.machines, func(m Machine) bool { return m.ID == machineID })
	if idx < 0 {
		return s
	}
	machines := slices.Clone(s.machines)
	machines[idx].Load += s.problem.durations[taskID]
	pending := s.pending.Clone()
	pending.Remove(taskID)
	history := make([]Assignment, len(s.history), len(s.history)+1)
	copy(history, s.history)
	history = append(history, Assignment{TaskID: taskID, MachineID: machineID})
	return &State{problem: s.problem, machines: machines, pending: pending, history: history}
}

// Cost is g(n): the makespan of the partial schedule, i.e. the maximum
// machine load. Zero for the all-idle root.
func (s *State) Cost() int {
	cmax := 0
	for _, m := range s.machines {
		if m.Load > cmax {
			cmax = m.Load
		}
	}
	return cmax
}

// Heuristic is h(n): the estimated unavoidable makespan increase to finish
// all pending work. The remaining work per machine minus the mean slack
// below the current makespan, clamped at zero and rounded. Packing remaining
// work into existing slack perfectly is rarely possible, and the rounding
// can overestimate, so this is near-admissible rather than admissible;
// WithoutHeuristic trades it for an exhaustive uniform-cost search.
func (s *State) Heuristic() int {
	if s.problem.zeroHeuristic {
		return 0
	}
	cmax := s.Cost()
	slack := 0
	for _, m := range s.machines {
		slack += cmax - m.Load
	}
	count := float64(len(s.machines))
	estimate := float64(s.RemainingDuration())/count - float64(slack)/count
	if estimate < 0 {
		return 0
	}
	return int(math.Round(estimate))
}

// RemainingDuration is the duration sum over the pending tasks.
func (s *State) RemainingDuration() int {
	remaining := 0
	s.pending.Each(func(id int) bool {
		remaining += s.problem.durations[id]
		return false
	})
	return remaining
}

// Terminal reports whether every task has been assigned.
func (s *State) Terminal() bool { return s.pending.Cardinality() == 0 }

// Expand generates every state reachable by one assignment: each pending
// task crossed with each machine. Pending tasks are visited in ascending id
// so generation order, and with it frontier tie-breaking, is deterministic.
func (s *State) Expand() []*State {
	if s.pending.Cardinality() == 0 {
		return nil
	}
	tasks := mapset.Sorted(s.pending)
	out := make([]*State, 0, len(tasks)*len(s.machines))
	for _, taskID := range tasks {
		for _, m := range s.machines {
			out = append(out, s.Assign(taskID, m.ID))
		}
	}
	return out
}

// Key is the canonical identity used by the visited memo: the sorted pending
// ids plus the sorted machine loads. Sorting the loads deliberately collapses
// machine-permutation-symmetric states into one entry; which machine holds
// which load, and the history that produced the state, are not part of
// identity.
func (s *State) Key() string {
	loads := make([]int, len(s.machines))
	for i, m := range s.machines {
		loads[i] = m.Load
	}
	slices.Sort(loads)
	var b strings.Builder
	for _, id := range mapset.Sorted(s.pending) {
		b.WriteString(strconv.Itoa(id))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	for _, load := range loads {
		b.WriteString(strconv.Itoa(load))
		b.WriteByte(',')
	}
	return b.String()
}

// Machines returns a copy of the per-machine loads in machine-id order.
func (s *State) Machines() []Machine { return slices.Clone(s.machines) }

// Pending returns the pending task ids in ascending order.
func (s *State) Pending() []int { return mapset.Sorted(s.pending) }

// History returns a copy of the assignments made along the path from the
// root, in the order they were made.
func (s *State) History() []Assignment { return slices.Clone(s.history) }
