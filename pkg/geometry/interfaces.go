package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3         // Point of intersection
	Normal    core.Vec3         // Surface normal at intersection, facing the incoming ray
	T         float64           // Distance along the ray
	FrontFace bool              // Whether ray hit the front face
	Material  material.Material // Material of the hit object, borrowed from the scene
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// IsEmissive reports whether the hit surface is a light source
func (h *HitRecord) IsEmissive() bool {
	return h.Material != nil && h.Material.HasEmission()
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
	BoundingBox() core.AABB
}

// SurfaceSample is a point drawn uniformly from a shape's surface
type SurfaceSample struct {
	Point    core.Vec3 // Sampled position
	Normal   core.Vec3 // Geometric (outward) normal at the position
	Emission core.Vec3 // Emitted radiance at the position
	PDF      float64   // Area density of the sample
}

// Emitter is implemented by shapes that can be registered as area lights
type Emitter interface {
	Shape

	// HasEmission reports whether the shape's material emits light
	HasEmission() bool

	// Area returns the total surface area
	Area() float64

	// Sample draws a point uniformly by area
	Sample(sampler core.Sampler) SurfaceSample
}
