// Command rule-sweep runs many randomly seeded grids per tiling and ranks
// rule thresholds by how lively the grids stay.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"tilelife/internal/core"
	"tilelife/internal/grid"
	"tilelife/internal/topology"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	modes := flag.String("modes", "square,triangle,hexagon", "comma-separated tilings to sweep")
	size := flag.String("size", "S", "cell size class")
	width := flag.Int("width", 960, "viewport width in pixels")
	height := flag.Int("height", 600, "viewport height in pixels")
	steps := flag.Int("steps", 200, "generations to simulate per run")
	seeds := flag.Int("seeds", 4, "random fills per rule")
	seed := flag.Int64("seed", 1337, "first seed")
	density := flag.Float64("density", 0.25, "share of cells alive after a fill")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "results to print per tiling")
	verbose := flag.Bool("v", false, "log each finished run")
	var overrides kvList
	flag.Var(&overrides, "set", "pin a threshold as mode.key=value, key one of u, o, r (repeatable)")
	flag.Parse()

	if *verbose {
		core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	sizeClass, err := grid.ParseSize(*size)
	if err != nil {
		log.Fatalf("size: %v", err)
	}
	pins, err := parseOverrides(overrides)
	if err != nil {
		log.Fatalf("set: %v", err)
	}

	cfg := sweepConfig{
		size:    sizeClass,
		width:   *width,
		height:  *height,
		steps:   *steps,
		density: *density,
	}
	for i := 0; i < *seeds; i++ {
		cfg.seeds = append(cfg.seeds, *seed+int64(i))
	}

	var sets []scenario
	var order []topology.Mode
	for _, name := range strings.Split(*modes, ",") {
		mode, err := topology.ParseMode(name)
		if err != nil {
			log.Fatalf("modes: %v", err)
		}
		order = append(order, mode)
		sets = append(sets, candidates(mode, pins[mode])...)
	}

	fmt.Printf("Sweeping %d rules (%d workers, %d seeds, %d steps)\n", len(sets), *workers, len(cfg.seeds), cfg.steps)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(cfg, sc)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	byMode := map[topology.Mode][]scenarioResult{}
	logger := core.Logger()
	for res := range results {
		if res.err != nil {
			log.Fatalf("%s: %v", res.scenario, res.err)
		}
		logger.Debug("run finished", "mode", res.scenario.mode, "rule", res.scenario.rule.String(), "population", res.population)
		byMode[res.scenario.mode] = append(byMode[res.scenario.mode], res)
	}
	elapsed := time.Since(start)

	for _, mode := range order {
		all := byMode[mode]
		rank(all)
		fmt.Printf("\nTop %d for %s (elapsed %s):\n", *top, mode, elapsed.Round(time.Millisecond))
		for i := 0; i < len(all) && i < *top; i++ {
			res := all[i]
			stable := "never"
			if res.stableRuns > 0 {
				stable = fmt.Sprintf("%.1f (%d/%d)", res.stableAt, res.stableRuns, res.runs)
			}
			fmt.Printf("%2d) %s pop=%.1f extinct=%d/%d stable=%s score=%.2f\n",
				i+1, res.scenario, res.population, res.extinct, res.runs, stable, res.score())
		}
	}
}
