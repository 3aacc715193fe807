package main

import (
	"fmt"
	"os"

	"github.com/df07/go-pathtracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	// The default version flag claims -v, which is the verbosity switch here
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render scenes using unidirectional path tracing"
	app.Version = "0.1.0"
	app.ErrWriter = os.Stderr
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene",
			Description: `
Render a scene with path tracing (next event estimation plus russian roulette
terminated indirect bounces) and write the result as a binary PPM image.

The image is split into horizontal bands rendered in parallel.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "cornell",
					Usage: "scene name; see list-scenes",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 16,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Value: 0,
					Usage: "number of render bands; 0 uses all logical CPUs",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Value: 50,
					Usage: "bounce depth at which indirect lighting is cut off",
				},
				cli.Float64Flag{
					Name:  "rr",
					Value: 0,
					Usage: "russian roulette continuation probability; 0 keeps the scene default",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "base random seed",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 0,
					Usage: "frame width; 0 keeps the scene default",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 0,
					Usage: "frame height; 0 keeps the scene default",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "binary.ppm",
					Usage: "image filename for the rendered frame",
				},
				cli.BoolFlag{
					Name:  "stats",
					Usage: "print per-band render statistics",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "list-scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
