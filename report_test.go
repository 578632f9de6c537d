package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pmcmax/pmc"
	"pmcmax/search"
)

func TestRenderReport(t *testing.T) {
	inst := &pmc.Instance{Name: "tiny", Machines: 2, Durations: []int{3, 3}}
	result := pmc.NewProblem(inst.Machines, inst.Durations).Solve()
	require.Equal(t, search.Goal, result.Status)

	report := renderReport(inst, result.State)
	require.Contains(t, report, "Final assignments:")
	require.Contains(t, report, "task 1 -> machine")
	require.Contains(t, report, "task 2 -> machine")
	require.Contains(t, report, "machine 1 (load 3)")
	require.Contains(t, report, "machine 2 (load 3)")
}

func TestDemoInstanceMatchesWriteup(t *testing.T) {
	inst := demoInstance()
	require.NoError(t, inst.Validate())
	require.Equal(t, 231, inst.TotalDuration())
	require.Equal(t, 58, inst.LowerBound())
	require.Equal(t, inst.LowerBound(), inst.Optimum)
	require.Len(t, inst.Durations, 34)
}
