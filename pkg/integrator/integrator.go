package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Scene is the query interface the integrator needs from a scene
type Scene interface {
	// Intersect returns the closest hit along the ray
	Intersect(ray core.Ray) (*geometry.HitRecord, bool)

	// SampleLight picks a point on an emitter. The sample's PDF is the area
	// density over all emitters (1/total emissive area), not the density on the
	// chosen light alone; the two agree when the scene has a single light.
	// ok is false when the scene has no lights.
	SampleLight(sampler core.Sampler) (sample geometry.SurfaceSample, ok bool)

	// RussianRoulette returns the probability of continuing an indirect path
	RussianRoulette() float64
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along the camera ray
	RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3
}
