package pmc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstanceValidate(t *testing.T) {
	valid := &Instance{Name: "ok", Machines: 2, Durations: []int{3, 1}}
	require.NoError(t, valid.Validate())

	noMachines := &Instance{Machines: 0, Durations: []int{3}}
	require.Error(t, noMachines.Validate())

	noTasks := &Instance{Machines: 2}
	require.Error(t, noTasks.Validate())

	badDuration := &Instance{Machines: 2, Durations: []int{3, 0}}
	require.Error(t, badDuration.Validate())
}

func TestLowerBound(t *testing.T) {
	spread := &Instance{Machines: 4, Durations: []int{10, 10, 10, 10, 18}}
	require.Equal(t, 15, spread.LowerBound(), "ceil(58/4)")

	dominated := &Instance{Machines: 4, Durations: []int{10, 1, 1}}
	require.Equal(t, 10, dominated.LowerBound(), "longest task dominates")
}

func TestLoadInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instances.json")
	payload := `[
		{"name": "tiny", "machines": 2, "durations": [3, 3], "optimum": 3},
		{"name": "serial", "machines": 1, "durations": [4, 2, 1]}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	instances, err := LoadInstances(path)
	require.NoError(t, err)
	require.Len(t, instances, 2)
	require.Equal(t, 3, instances[0].Optimum)
	require.Equal(t, []int{4, 2, 1}, instances[1].Durations)

	inst, ok := FindInstance(instances, "serial")
	require.True(t, ok)
	require.Equal(t, 1, inst.Machines)

	first, ok := FindInstance(instances, "")
	require.True(t, ok)
	require.Equal(t, "tiny", first.Name)

	_, ok = FindInstance(instances, "missing")
	require.False(t, ok)
}

func TestLoadInstancesRejectsInvalidEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	payload := `[{"name": "bad", "machines": 0, "durations": [3]}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	_, err := LoadInstances(path)
	require.Error(t, err)
}

func TestLoadInstancesMissingFile(t *testing.T) {
	_, err := LoadInstances(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestRandomInstance(t *testing.T) {
	inst := Random(3, 20)
	require.Equal(t, 3, inst.Machines)
	require.Len(t, inst.Durations, 20)
	require.NoError(t, inst.Validate())
}
