package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"satellites/internal/core"
	"satellites/internal/satellites"
)

type scenarioResult struct {
	seed         int64
	bodyErrors   int
	maxMismatch  int
	firstProblem string
	err          error
}

func (r scenarioResult) failed() bool {
	return r.err != nil || r.firstProblem != ""
}

func main() {
	first := flag.Int64("first", 1, "first seed to check")
	count := flag.Int("count", 32, "number of consecutive seeds")
	workers := flag.Int("workers", runtime.NumCPU(), "number of seeds checked in parallel")
	inner := flag.Int("inner", 1, "goroutines per simulation")
	width := flag.Int("w", 720, "screen width")
	height := flag.Int("h", 720, "screen height")
	bodies := flag.Int("bodies", 64, "bodies per scenario")
	substeps := flag.Int("substeps", 10000, "sub-steps per frame")
	backend := flag.String("backend", "cpu", "field shader backend")
	flag.Parse()

	base := satellites.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.Bodies = *bodies
	base.Workers = *inner
	base.Backend = *backend
	base.Params.SubSteps = *substeps
	if err := base.Validate(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Checking %d seeds from %d (%d workers, %d validated frames each)\n",
		*count, *first, *workers, base.Check.ValidationFrames)

	jobs := make(chan int64)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runScenario(base, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *count; i++ {
			jobs <- *first + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
		if res.failed() {
			fmt.Printf("seed %d: %s\n", res.seed, res.describe())
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].maxMismatch != all[j].maxMismatch {
			return all[i].maxMismatch > all[j].maxMismatch
		}
		return all[i].seed < all[j].seed
	})

	failures := 0
	for _, r := range all {
		if r.failed() {
			failures++
		}
	}
	fmt.Printf("Checked %d seeds in %s: %d diverged\n", len(all), time.Since(start).Round(time.Millisecond), failures)
	top := 5
	if top > len(all) {
		top = len(all)
	}
	for _, r := range all[:top] {
		fmt.Printf("  seed %d: worst frame had %d wrong pixels, %d body mismatches\n", r.seed, r.maxMismatch, r.bodyErrors)
	}
}

func (r scenarioResult) describe() string {
	if r.err != nil {
		return r.err.Error()
	}
	return r.firstProblem
}

func runScenario(base satellites.Config, seed int64) scenarioResult {
	res := scenarioResult{seed: seed}
	cfg := base
	cfg.Seed = seed

	shader, err := core.NewShader(cfg.Backend, cfg.ShaderConfig())
	if err != nil {
		res.err = err
		return res
	}
	driver, err := satellites.NewDriver(cfg, shader)
	if err != nil {
		res.err = err
		return res
	}
	defer driver.Close()

	for frame := 0; frame < cfg.Check.ValidationFrames; frame++ {
		report, err := driver.Step(0, 0)
		if err != nil {
			res.err = err
			return res
		}
		if report.Shading.Mismatches > res.maxMismatch {
			res.maxMismatch = report.Shading.Mismatches
		}
		for _, d := range report.Divergences {
			if _, ok := d.(*satellites.IntegrationDivergence); ok {
				res.bodyErrors++
			}
			if res.firstProblem == "" {
				res.firstProblem = d.Error()
			}
		}
	}
	return res
}
