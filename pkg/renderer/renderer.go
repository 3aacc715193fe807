package renderer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Options contains renderer settings
type Options struct {
	Workers  int              // Number of bands rendered in parallel; <= 0 uses all logical CPUs
	Seed     int64            // Base seed; band k uses Seed+k
	Progress ProgressReporter // Optional progress sink
}

// Renderer renders a scene by splitting the image into horizontal bands
type Renderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	options    Options
	logger     log.Logger
}

// NewRenderer creates a renderer for a preprocessed scene
func NewRenderer(sc *scene.Scene, integ integrator.Integrator, options Options, logger log.Logger) *Renderer {
	return &Renderer{
		scene:      sc,
		integrator: integ,
		options:    options,
		logger:     logger,
	}
}

// Render traces spp samples per pixel and returns the averaged radiance. On
// cancellation the partial framebuffer is discarded and the context error
// is returned.
func (r *Renderer) Render(ctx context.Context, spp int) (*Framebuffer, RenderStats, error) {
	if spp <= 0 {
		return nil, RenderStats{}, fmt.Errorf("%w: got %d", ErrInvalidSamples, spp)
	}

	width, height := r.scene.Width, r.scene.Height
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}

	workers := r.options.Workers
	if workers <= 0 {
		workers = HardwareConcurrency()
	}
	bands := PartitionRows(height, workers)

	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: spp,
		Workers:         len(bands),
		Bands:           make([]BandStats, len(bands)),
	}
	r.logger.Infof("rendering %q at %dx%d, %d SPP using %d workers", r.scene.Name, width, height, spp, len(bands))

	fb := NewFramebuffer(width, height)
	camera := NewCamera(r.scene.Eye, r.scene.FOV, width, height)
	counter := NewRowCounter(height, r.options.Progress)

	start := time.Now()
	var wg sync.WaitGroup
	for _, band := range bands {
		wg.Add(1)
		go func(band Band) {
			defer wg.Done()
			r.logger.Debugf("worker %d: rows [%d, %d)", band.Index, band.Start, band.End)

			bandStart := time.Now()
			sampler := core.NewSeededSampler(r.options.Seed + int64(band.Index))
			rows := r.renderBand(ctx, band, fb, camera, sampler, spp, counter)

			stats.Bands[band.Index] = BandStats{
				Band:         band,
				RowsRendered: rows,
				RenderTime:   time.Since(bandStart),
			}
		}(band)
	}
	wg.Wait()
	stats.RenderTime = time.Since(start)

	if counter.Rows() < height {
		err := ctx.Err()
		if err == nil {
			err = context.Canceled
		}
		r.logger.Warningf("render interrupted after %d of %d rows", counter.Rows(), height)
		return nil, stats, fmt.Errorf("%w: %w", ErrInterrupted, err)
	}

	counter.Finish()
	r.logger.Noticef("rendered %q in %s", r.scene.Name, stats.RenderTime)
	return fb, stats, nil
}

// renderBand fills the rows of one band and returns how many were finished
func (r *Renderer) renderBand(ctx context.Context, band Band, fb *Framebuffer, camera *Camera, sampler core.Sampler, spp int, counter *RowCounter) int {
	weight := 1.0 / float64(spp)
	for j := band.Start; j < band.End; j++ {
		if ctx.Err() != nil {
			return j - band.Start
		}
		for i := 0; i < fb.Width; i++ {
			var color core.Vec3
			for k := 0; k < spp; k++ {
				ray := camera.GetRay(i, j, sampler)
				color = color.Add(r.integrator.RayColor(ray, r.scene, sampler).Multiply(weight))
			}
			fb.Set(i, j, color)
		}
		counter.Increment()
	}
	return band.Rows()
}

// RenderToFile renders the scene and writes the result as a PPM image.
// Nothing is written if the render fails or is cancelled.
func RenderToFile(ctx context.Context, r *Renderer, spp int, path string) (RenderStats, error) {
	fb, stats, err := r.Render(ctx, spp)
	if err != nil {
		return stats, err
	}
	if err := SavePPM(path, fb); err != nil {
		return stats, err
	}
	r.logger.Infof("wrote %s", path)
	return stats, nil
}
