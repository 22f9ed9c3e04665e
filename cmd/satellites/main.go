//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"satellites/internal/app"
	"satellites/internal/core"
	"satellites/internal/satellites"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	opts := app.NewConfig()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := opts.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	logger := log.New(os.Stdout, "", 0)
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

	ebiten.SetWindowTitle("Satellites")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(app.New(driver, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	logger.Print("Quit called")
	if cfg.Seed != 0 {
		logger.Printf("Used seed: %d", driver.Seed())
	}
}
