package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Camera is a pinhole camera at a fixed eye position looking down +Z.
// Image x grows to the left in world space.
type Camera struct {
	eye    core.Vec3
	width  float64
	height float64
	aspect float64
	scale  float64
}

// NewCamera creates a camera with a vertical field of view in degrees
func NewCamera(eye core.Vec3, fov float64, width, height int) *Camera {
	return &Camera{
		eye:    eye,
		width:  float64(width),
		height: float64(height),
		aspect: float64(width) / float64(height),
		scale:  math.Tan(fov * 0.5 * math.Pi / 180),
	}
}

// GetRay generates a ray through pixel (i, j) jittered uniformly within the pixel
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()
	x := (2*(float64(i)+jitter.X)/c.width - 1) * c.aspect * c.scale
	y := (1 - 2*(float64(j)+jitter.Y)/c.height) * c.scale
	return core.NewRay(c.eye, core.NewVec3(-x, y, 1))
}
