package main

import (
	"fmt"
	"strings"

	"pmcmax/pmc"
)

// renderReport formats the final schedule: the assignment history in the
// order the search made it, then per-machine task lists with their
// durations and loads.
func renderReport(inst *pmc.Instance, final *pmc.State) string {
	var b strings.Builder

	b.WriteString("Final assignments:\n")
	for _, a := range final.History() {
		fmt.Fprintf(&b, "  task %d -> machine %d\n", a.TaskID, a.MachineID)
	}

	tasksByMachine := make(map[int][]int)
	for _, a := range final.History() {
		tasksByMachine[a.MachineID] = append(tasksByMachine[a.MachineID], a.TaskID)
	}

	b.WriteString("\nPer-machine schedule:\n")
	for _, m := range final.Machines() {
		ids := tasksByMachine[m.ID]
		tasks := make([]string, len(ids))
		durations := make([]string, len(ids))
		for i, id := range ids {
			tasks[i] = fmt.Sprintf("%d", id)
			durations[i] = fmt.Sprintf("%d", inst.Durations[id-1])
		}
		fmt.Fprintf(&b, "  machine %d (load %d): tasks [%s] durations [%s]\n",
			m.ID, m.Load, strings.Join(tasks, ", "), strings.Join(durations, ", "))
	}

	return b.String()
}
