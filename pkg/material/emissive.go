package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Emissive represents a light-emitting material.
// Lights don't reflect: a path that reaches one ends there.
type Emissive struct {
	Radiance core.Vec3 // Emitted light color/intensity
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Radiance: emission}
}

// HasEmission implements Material
func (e *Emissive) HasEmission() bool {
	return true
}

// Emission returns the emitted radiance
func (e *Emissive) Emission() core.Vec3 {
	return e.Radiance
}

// Eval implements Material
func (e *Emissive) Eval(wi, wo, normal core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Sample implements Material. The returned direction carries zero density.
func (e *Emissive) Sample(wo, normal core.Vec3, sampler core.Sampler) core.Vec3 {
	return normal
}

// PDF implements Material
func (e *Emissive) PDF(wi, wo, normal core.Vec3) float64 {
	return 0
}
