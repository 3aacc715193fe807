package cmd

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scenes and their settings.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Resolution", "FOV", "Primitives", "Lights", "RR"})

	for _, name := range scene.Names() {
		sc, err := scene.New(name)
		if err != nil {
			return err
		}
		table.Append([]string{
			name,
			fmt.Sprintf("%dx%d", sc.Width, sc.Height),
			fmt.Sprintf("%.0f", sc.FOV),
			fmt.Sprintf("%d", sc.GetPrimitiveCount()),
			fmt.Sprintf("%d", len(sc.Lights())),
			fmt.Sprintf("%.2f", sc.RussianRoulette()),
		})
	}

	table.Render()
	return nil
}
