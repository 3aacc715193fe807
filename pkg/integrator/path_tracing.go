package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

const (
	// DefaultMaxDepth is the soft ceiling on indirect bounces
	DefaultMaxDepth = 50

	// DefaultShadowEpsilon is the tolerance when comparing a shadow hit with the light distance
	DefaultShadowEpsilon = 5e-4
)

// Config contains path tracing settings
type Config struct {
	MaxDepth      int     // Depth at which the indirect term is cut off
	ShadowEpsilon float64 // Shadow test tolerance
}

// DefaultConfig returns the standard settings
func DefaultConfig() Config {
	return Config{
		MaxDepth:      DefaultMaxDepth,
		ShadowEpsilon: DefaultShadowEpsilon,
	}
}

// PathTracingIntegrator implements unidirectional path tracing with next event
// estimation and russian roulette path termination
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator. Zero fields
// in config take their defaults.
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultMaxDepth
	}
	if config.ShadowEpsilon <= 0 {
		config.ShadowEpsilon = DefaultShadowEpsilon
	}
	return &PathTracingIntegrator{config: config}
}

// Config returns the effective settings
func (pt *PathTracingIntegrator) Config() Config {
	return pt.config
}

// RayColor computes the radiance for a camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3 {
	hit, isHit := scene.Intersect(ray)
	if !isHit {
		return core.Vec3{}
	}

	// Directly visible lights contribute their emission only
	if hit.IsEmissive() {
		return hit.Material.Emission()
	}

	return pt.Shade(hit, ray.Direction.Negate(), scene, sampler, 0)
}

// Shade returns the radiance leaving a non-emissive hit toward wo
func (pt *PathTracingIntegrator) Shade(hit *geometry.HitRecord, wo core.Vec3, scene Scene, sampler core.Sampler, depth int) core.Vec3 {
	direct := pt.DirectLighting(hit, wo, scene, sampler)
	indirect := pt.IndirectLighting(hit, wo, scene, sampler, depth)
	return direct.Add(indirect)
}

// DirectLighting samples one point on the lights and returns its unoccluded contribution
func (pt *PathTracingIntegrator) DirectLighting(hit *geometry.HitRecord, wo core.Vec3, scene Scene, sampler core.Sampler) core.Vec3 {
	lightSample, hasLight := scene.SampleLight(sampler)
	if !hasLight || lightSample.PDF <= 0 {
		return core.Vec3{}
	}

	toLight := lightSample.Point.Subtract(hit.Point)
	distanceSquared := toLight.LengthSquared()
	if distanceSquared <= 0 {
		return core.Vec3{}
	}
	distance := toLight.Length()
	wi := toLight.Multiply(1.0 / distance)

	shadowHit, blocked := scene.Intersect(core.NewRay(hit.Point, wi))
	if blocked && shadowHit.T-distance <= -pt.config.ShadowEpsilon {
		return core.Vec3{}
	}

	cosSurface := max(0.0, hit.Normal.Dot(wi))
	cosLight := max(0.0, lightSample.Normal.Dot(wi.Negate()))
	if cosSurface == 0 || cosLight == 0 {
		return core.Vec3{}
	}

	brdf := hit.Material.Eval(wi, wo, hit.Normal)
	contribution := lightSample.Emission.MultiplyVec(brdf).
		Multiply(cosSurface * cosLight / distanceSquared / lightSample.PDF)

	return finiteOrZero(contribution)
}

// IndirectLighting continues the path with one BRDF-sampled bounce
func (pt *PathTracingIntegrator) IndirectLighting(hit *geometry.HitRecord, wo core.Vec3, scene Scene, sampler core.Sampler, depth int) core.Vec3 {
	if depth >= pt.config.MaxDepth {
		return core.Vec3{}
	}

	continueProbability := scene.RussianRoulette()
	if continueProbability <= 0 || sampler.Get1D() >= continueProbability {
		return core.Vec3{}
	}

	wi := hit.Material.Sample(wo, hit.Normal, sampler)
	pdf := hit.Material.PDF(wi, wo, hit.Normal)
	if pdf <= 0 {
		return core.Vec3{}
	}

	next, isHit := scene.Intersect(core.NewRay(hit.Point, wi))
	// Emitters reached by a bounce are already counted by the direct term
	if !isHit || next.IsEmissive() {
		return core.Vec3{}
	}

	cosine := max(0.0, wi.Dot(hit.Normal))
	brdf := hit.Material.Eval(wi, wo, hit.Normal)
	incoming := pt.Shade(next, wi.Negate(), scene, sampler, depth+1)

	contribution := incoming.MultiplyVec(brdf).Multiply(cosine / pdf / continueProbability)
	return finiteOrZero(contribution)
}

func finiteOrZero(v core.Vec3) core.Vec3 {
	if !v.IsFinite() {
		return core.Vec3{}
	}
	return v.Max(core.Vec3{})
}
