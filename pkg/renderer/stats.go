package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// BandStats records the work done by one worker
type BandStats struct {
	Band
	RowsRendered int           // Rows finished before completion or cancellation
	RenderTime   time.Duration // Wall time spent in the band
}

// RenderStats contains statistics about a render
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	Workers         int
	Bands           []BandStats
	RenderTime      time.Duration
}

// TotalSamples returns the number of camera samples taken
func (s RenderStats) TotalSamples() int64 {
	rows := 0
	for _, band := range s.Bands {
		rows += band.RowsRendered
	}
	return int64(rows) * int64(s.Width) * int64(s.SamplesPerPixel)
}

// SamplesPerSecond returns the camera sample throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.TotalSamples()) / s.RenderTime.Seconds()
}

// WriteTable prints per-band timings as a table
func (s RenderStats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Band", "Rows", "% of frame", "Render time"})
	for _, band := range s.Bands {
		percent := 0.0
		if s.Height > 0 {
			percent = 100 * float64(band.RowsRendered) / float64(s.Height)
		}
		table.Append([]string{
			fmt.Sprintf("%d", band.Index),
			fmt.Sprintf("%d-%d", band.Start, band.End-1),
			fmt.Sprintf("%02.1f %%", percent),
			band.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", fmt.Sprintf("%d SPP", s.SamplesPerPixel), "TOTAL", s.RenderTime.String()})

	table.Render()
}
