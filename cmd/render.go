package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

// sceneOverrides holds command line values that replace scene defaults.
// Zero values keep the scene's own settings.
type sceneOverrides struct {
	Width  int
	Height int
	RR     float64
}

// createScene builds the named scene and applies the overrides
func createScene(name string, overrides sceneOverrides) (*scene.Scene, error) {
	sc, err := scene.New(name)
	if err != nil {
		return nil, err
	}

	if overrides.Width > 0 {
		sc.Width = overrides.Width
	}
	if overrides.Height > 0 {
		sc.Height = overrides.Height
	}
	if overrides.RR != 0 {
		if overrides.RR < 0 || overrides.RR > 1 {
			return nil, fmt.Errorf("russian roulette probability %v outside (0, 1]", overrides.RR)
		}
		sc.RR = overrides.RR
	}
	return sc, nil
}

// RenderScene renders a built-in scene to a PPM file.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := createScene(ctx.String("scene"), sceneOverrides{
		Width:  ctx.Int("width"),
		Height: ctx.Int("height"),
		RR:     ctx.Float64("rr"),
	})
	if err != nil {
		return err
	}

	if info, err := renderer.GetSystemInfo(); err == nil {
		logger.Infof("system: %s", info)
	} else {
		logger.Debugf("could not query system info: %v", err)
	}

	integ := integrator.NewPathTracingIntegrator(integrator.Config{
		MaxDepth: ctx.Int("max-depth"),
	})

	progressOut := ctx.App.ErrWriter
	if progressOut == nil {
		progressOut = os.Stderr
	}

	opts := renderer.Options{
		Workers:  ctx.Int("workers"),
		Seed:     ctx.Int64("seed"),
		Progress: renderer.NewConsoleProgress(progressOut, 70),
	}
	r := renderer.NewRenderer(sc, integ, opts, logger)

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := renderer.RenderToFile(renderCtx, r, ctx.Int("spp"), ctx.String("out"))
	if err != nil {
		return err
	}

	if ctx.Bool("stats") {
		displayRenderStats(stats)
	}
	return nil
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	stats.WriteTable(&buf)
	logger.Noticef("render statistics (%.0f samples/s)\n%s", stats.SamplesPerSecond(), buf.String())
}
