package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// HemisphereSampling selects how a diffuse surface picks bounce directions
type HemisphereSampling int

const (
	// CosineWeighted draws directions with density cos(θ)/π
	CosineWeighted HemisphereSampling = iota
	// UniformHemisphere draws directions with constant density 1/(2π)
	UniformHemisphere
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo   core.Vec3          // Base reflectance
	Sampling HemisphereSampling // Bounce direction distribution
}

// NewLambertian creates a new lambertian material using cosine-weighted sampling
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo, Sampling: CosineWeighted}
}

// NewUniformLambertian creates a lambertian material that samples the hemisphere uniformly
func NewUniformLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo, Sampling: UniformHemisphere}
}

// HasEmission implements Material
func (l *Lambertian) HasEmission() bool {
	return false
}

// Emission implements Material
func (l *Lambertian) Emission() core.Vec3 {
	return core.Vec3{}
}

// Eval returns albedo/π when the viewer is on the normal's side, zero otherwise
func (l *Lambertian) Eval(wi, wo, normal core.Vec3) core.Vec3 {
	if normal.Dot(wo) <= 0 {
		return core.Vec3{}
	}
	return l.Albedo.Multiply(1.0 / math.Pi)
}

// Sample draws a bounce direction in the hemisphere around normal
func (l *Lambertian) Sample(wo, normal core.Vec3, sampler core.Sampler) core.Vec3 {
	if l.Sampling == UniformHemisphere {
		return core.SampleUniformHemisphere(normal, sampler.Get2D())
	}
	return core.SampleCosineHemisphere(normal, sampler.Get2D())
}

// PDF returns the density of wi, zero below the surface
func (l *Lambertian) PDF(wi, wo, normal core.Vec3) float64 {
	cosTheta := wi.Dot(normal)
	if cosTheta <= 0 {
		return 0
	}
	if l.Sampling == UniformHemisphere {
		return 1.0 / (2.0 * math.Pi)
	}
	return cosTheta / math.Pi
}
