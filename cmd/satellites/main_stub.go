//go:build !ebiten

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"satellites/internal/app"
	"satellites/internal/core"
	"satellites/internal/satellites"
)

// Without the ebiten tag there is no window and no pointer: run a fixed number
// of frames at the screen center and print the diagnostics.
func main() {
	opts := app.NewConfig()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := opts.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	logger := log.New(os.Stdout, "", 0)
	fmt.Fprintln(os.Stderr, "Headless build: re-run with `go run -tags ebiten ./cmd/satellites` for the window.")
	if cfg.Seed != 0 {
		logger.Printf("Using seed: %d", cfg.Seed)
	}

	shader, err := core.NewShader(cfg.Backend, cfg.ShaderConfig())
	if err != nil {
		log.Fatal(err)
	}
	driver, err := satellites.NewDriver(cfg, shader)
	if err != nil {
		log.Fatal(err)
	}
	defer driver.Close()
	logger.Printf("Field shader backend: %s", driver.Shader().Name())

	for _, g := range driver.Parameters().Groups {
		for _, p := range g.Params {
			logger.Printf("%s/%s = %s", g.Name, p.Label, p.Value)
		}
	}

	failed := false
	for i := 0; i < opts.Frames; i++ {
		report, err := driver.Step(0, 0)
		if err != nil {
			log.Fatal(err)
		}
		report.Log(logger)
		failed = failed || !report.OK()
	}
	if cfg.Seed != 0 {
		logger.Printf("Used seed: %d", cfg.Seed)
	}
	if failed {
		os.Exit(1)
	}
}
