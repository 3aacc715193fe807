package renderer

import "github.com/df07/go-pathtracer/pkg/core"

// Framebuffer holds linear radiance per pixel in row-major order
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the pixel at column i, row j
func (fb *Framebuffer) At(i, j int) core.Vec3 {
	return fb.Pixels[j*fb.Width+i]
}

// Set stores the pixel at column i, row j
func (fb *Framebuffer) Set(i, j int, c core.Vec3) {
	fb.Pixels[j*fb.Width+i] = c
}
