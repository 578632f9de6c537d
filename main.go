package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"pmcmax/pmc"
	"pmcmax/search"
)

var (
	app = kingpin.New("pmcmax", "Assigns tasks to identical parallel machines, minimizing the makespan with best-first search.")

	debug         = app.Flag("debug", "Enable debug logging.").Short('d').Bool()
	configFile    = app.Flag("config", "YAML problem description.").Short('c').String()
	instanceFile  = app.Flag("instances", "JSON instance collection.").String()
	instanceName  = app.Flag("instance", "Instance name to pick from the collection (first entry when empty).").String()
	machineCount  = app.Flag("machines", "Number of machines.").Short('m').Default("4").Int()
	exhaustive    = app.Flag("exhaustive", "Disable the slack heuristic and run uniform-cost search.").Bool()
	frontierKind  = app.Flag("frontier", "Frontier implementation.").Default("heap").Enum("heap", "meld")
	progressEvery = app.Flag("progress-every", "Log progress every N expansions (0 disables).").Default("100000").Int()
	taskDurations = app.Arg("duration", "Task durations, used when neither --config nor --instances is given.").Ints()
)

// demoInstance is the benchmark instance from the project writeup: 34 tasks
// summing to 231 on 4 machines, optimum 58.
func demoInstance() *pmc.Instance {
	return &pmc.Instance{
		Name:     "demo-34",
		Machines: 4,
		Durations: []int{
			25, 22, 19, 17, 12, 12, 11, 10, 10, 9, 9, 8, 8, 7, 5, 5, 5, 5,
			4, 4, 4, 4, 3, 3, 3, 3, 2, 2, 2, 2, 1, 1, 1, 1,
		},
		Optimum: 58,
	}
}

// resolveInput picks the problem source by precedence: --config, then
// --instances, then duration arguments, then the built-in demo instance.
func resolveInput() (*pmc.Instance, *SearchConfig, error) {
	if *configFile != "" {
		cfg, err := loadConfig(*configFile)
		if err != nil {
			return nil, nil, err
		}
		return cfg.instance(), &cfg.Search, nil
	}
	if *instanceFile != "" {
		instances, err := pmc.LoadInstances(*instanceFile)
		if err != nil {
			return nil, nil, err
		}
		inst, ok := pmc.FindInstance(instances, *instanceName)
		if !ok {
			return nil, nil, fmt.Errorf("instance %q not found in %s", *instanceName, *instanceFile)
		}
		return inst, nil, nil
	}
	if len(*taskDurations) > 0 {
		return &pmc.Instance{Name: "cli", Machines: *machineCount, Durations: *taskDurations}, nil, nil
	}
	return demoInstance(), nil, nil
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	inst, searchCfg, err := resolveInput()
	if err != nil {
		log.WithError(err).Fatal("cannot resolve problem input")
	}
	if err := inst.Validate(); err != nil {
		log.WithError(err).Fatal("rejecting malformed problem input")
	}

	// flags fill in whatever the config did not decide
	if searchCfg == nil {
		searchCfg = &SearchConfig{
			Exhaustive:    *exhaustive,
			Frontier:      *frontierKind,
			ProgressEvery: *progressEvery,
		}
	}

	var problemOpts []pmc.ProblemOption
	if searchCfg.Exhaustive {
		problemOpts = append(problemOpts, pmc.WithoutHeuristic())
	}
	searchOpts := []search.Option{search.WithProgressEvery(searchCfg.ProgressEvery)}
	if searchCfg.Frontier == "meld" {
		searchOpts = append(searchOpts, search.WithMeldFrontier())
	}

	log.WithFields(log.Fields{
		"instance": inst.Name,
		"machines": inst.Machines,
		"tasks":    len(inst.Durations),
		"bound":    inst.LowerBound(),
	}).Info("starting search")

	problem := pmc.NewProblem(inst.Machines, inst.Durations, problemOpts...)
	started := time.Now()
	result := problem.Solve(searchOpts...)
	elapsed := time.Since(started)

	if result.Status != search.Goal {
		log.WithFields(log.Fields{
			"expanded": result.Expanded,
			"pruned":   result.Pruned,
		}).Fatal("frontier exhausted without a complete schedule")
	}

	fmt.Print(renderReport(inst, result.State))
	fmt.Printf("\nMakespan: %d (lower bound %d)\n", result.Cost, inst.LowerBound())
	fmt.Printf("Search time: %v (%d expanded, %d generated, %d pruned)\n",
		elapsed, result.Expanded, result.Generated, result.Pruned)
}
