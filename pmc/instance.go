package pmc

import (
	"encoding/json"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	validator "gopkg.in/validator.v2"
)

// Instance is one problem description: a machine count and an ordered list
// of task durations. Optimum carries the best known makespan when one is
// known, zero otherwise.
type Instance struct {
	Name      string `json:"name" yaml:"name"`
	Machines  int    `json:"machines" yaml:"machines" validate:"min=1"`
	Durations []int  `json:"durations" yaml:"durations" validate:"min=1"`
	Optimum   int    `json:"optimum,omitempty" yaml:"optimum,omitempty"`
}

// Validate rejects malformed input before any search state is constructed:
// the core assumes a positive machine count and positive durations.
func (inst *Instance) Validate() error {
	if err := validator.Validate(inst); err != nil {
		return errors.Wrap(err, "invalid instance")
	}
	for i, d := range inst.Durations {
		if d <= 0 {
			return errors.Errorf("invalid instance: task %d has non-positive duration %d", i+1, d)
		}
	}
	return nil
}

// TotalDuration is the duration sum over every task.
func (inst *Instance) TotalDuration() int {
	total := 0
	for _, d := range inst.Durations {
		total += d
	}
	return total
}

// LowerBound is a provable makespan floor: remaining work spread perfectly
// over all machines, or the single longest task, whichever is larger.
func (inst *Instance) LowerBound() int {
	total := inst.TotalDuration()
	bound := (total + inst.Machines - 1) / inst.Machines
	for _, d := range inst.Durations {
		if d > bound {
			bound = d
		}
	}
	return bound
}

// LoadInstances reads a JSON instance collection from path and validates
// every entry.
func LoadInstances(path string) ([]*Instance, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading instance collection %s", path)
	}
	var instances []*Instance
	if err := json.Unmarshal(fileBytes, &instances); err != nil {
		return nil, errors.Wrapf(err, "parsing instance collection %s", path)
	}
	for _, inst := range instances {
		if err := inst.Validate(); err != nil {
			return nil, errors.Wrapf(err, "instance %q", inst.Name)
		}
	}
	return instances, nil
}

// FindInstance picks the named instance out of a collection. An empty name
// selects the first entry.
func FindInstance(instances []*Instance, name string) (*Instance, bool) {
	if name == "" && len(instances) > 0 {
		return instances[0], true
	}
	for _, inst := range instances {
		if inst.Name == name {
			return inst, true
		}
	}
	return nil, false
}

// Random builds an instance with uniformly random durations in [1, 25].
func Random(machines, tasks int) *Instance {
	durations := make([]int, tasks)
	for i := range durations {
		durations[i] = rand.Intn(25) + 1
	}
	return &Instance{Name: "random", Machines: machines, Durations: durations}
}
