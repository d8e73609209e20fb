package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gonum.org/v1/gonum/mat"

	mpb "github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"

	"github.com/quantataraxia/jumpsim/config"
	"github.com/quantataraxia/jumpsim/models"
	"github.com/quantataraxia/jumpsim/report"
	"github.com/quantataraxia/jumpsim/simulation"
)

type job struct {
	index int
	name  string
	model models.MertonJumpDiffusion
}

type outcome struct {
	index  int
	result report.Result
	paths  *mat.Dense
	err    error
}

func main() {
	// .env is optional; environment overrides are applied in config.Load.
	_ = godotenv.Load()

	configPath := flag.String("config", "jumpsim.yaml", "scenario config file")
	chartFile := flag.String("chart", "", "chart output file (overrides config)")
	resultsFile := flag.String("out", "", "results JSON file (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *chartFile != "" {
		cfg.Output.Chart = *chartFile
	}
	if *resultsFile != "" {
		cfg.Output.Results = *resultsFile
	}

	jobs := make([]job, 0, len(cfg.Scenarios))
	for i, sc := range cfg.Scenarios {
		jobs = append(jobs, job{index: i, name: sc.Name, model: sc.Model()})
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > len(jobs) {
		numWorkers = len(jobs)
	}
	fmt.Printf("Running %d scenario(s) on %d worker(s)\n", len(jobs), numWorkers)

	p := mpb.New(mpb.WithWidth(64))
	bar := p.AddBar(int64(len(jobs)),
		mpb.PrependDecorators(
			decor.Name("Simulating"),
			decor.Percentage(decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d / %d)", decor.WCSyncSpace),
		),
	)

	outcomes := runJobs(jobs, numWorkers, bar)
	p.Wait()

	results := make([]report.Result, 0, len(outcomes))
	for _, oc := range outcomes {
		if oc.err != nil {
			log.Fatalf("scenario %q: %v", oc.result.Name, oc.err)
		}
		report.Print(os.Stdout, oc.result)
		results = append(results, oc.result)
	}

	if cfg.Output.Results != "" {
		if err := report.WriteResults(cfg.Output.Results, results); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %d result(s) to %s\n", len(results), cfg.Output.Results)
	}

	// The chart shows the first scenario; one figure per run, like the
	// original single-scenario workflow.
	if cfg.Output.Chart != "" && len(outcomes) > 0 {
		first := outcomes[0]
		if err := report.Chart(first.paths, first.result.Model, cfg.Output.Chart); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote chart to %s\n", cfg.Output.Chart)
	}
}

func runJobs(jobs []job, numWorkers int, bar *mpb.Bar) []outcome {
	jobChan := make(chan job, len(jobs))
	resultChan := make(chan outcome, len(jobs))
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobChan {
				resultChan <- run(j)
				bar.Increment()
			}
		}()
	}

	for _, j := range jobs {
		jobChan <- j
	}
	close(jobChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	outcomes := make([]outcome, len(jobs))
	for oc := range resultChan {
		outcomes[oc.index] = oc
	}
	return outcomes
}

func run(j job) outcome {
	start := time.Now()

	paths, err := simulation.SimulatePaths(j.model)
	if err != nil {
		return outcome{index: j.index, result: report.Result{Name: j.name}, err: err}
	}

	summary, err := simulation.Summarize(simulation.Terminal(paths), j.model.Alpha)
	if err != nil {
		return outcome{index: j.index, result: report.Result{Name: j.name}, err: err}
	}

	return outcome{
		index: j.index,
		paths: paths,
		result: report.Result{
			Name:    j.name,
			Model:   j.model,
			Moments: j.model.Moments(),
			Summary: summary,
			Elapsed: time.Since(start),
		},
	}
}
