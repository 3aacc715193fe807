package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3         // The three vertices
	Material   material.Material // Material of the triangle
	edge1      core.Vec3         // V1 - V0
	edge2      core.Vec3         // V2 - V0
	normal     core.Vec3         // Cached normal vector
	area       float64
	bbox       core.AABB
}

// NewTriangle creates a new triangle from three vertices.
// The normal follows the winding: (V1-V0) × (V2-V0).
func NewTriangle(v0, v1, v2 core.Vec3, material material.Material) *Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	cross := edge1.Cross(edge2)

	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		edge1:    edge1,
		edge2:    edge2,
		normal:   cross.Normalize(),
		area:     0.5 * cross.Length(),
		bbox:     core.NewAABBFromPoints(v0, v1, v2).Expand(1e-4),
	}
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	const epsilon = 1e-8

	h := ray.Direction.Cross(t.edge2)
	a := t.edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(t.edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := f * t.edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return nil, false
	}

	hitRecord := &HitRecord{
		T:        tParam,
		Point:    ray.At(tParam),
		Material: t.Material,
	}
	hitRecord.SetFaceNormal(ray, t.normal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Normal returns the triangle's geometric normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// HasEmission implements Emitter
func (t *Triangle) HasEmission() bool {
	return t.Material != nil && t.Material.HasEmission()
}

// Area returns the triangle's area
func (t *Triangle) Area() float64 {
	return t.area
}

// Sample picks a point uniformly on the triangle
func (t *Triangle) Sample(sampler core.Sampler) SurfaceSample {
	b0, b1, b2 := core.SampleTriangle(sampler.Get2D())
	sample := SurfaceSample{
		Point:  t.V0.Multiply(b0).Add(t.V1.Multiply(b1)).Add(t.V2.Multiply(b2)),
		Normal: t.normal,
	}
	if t.area > 0 {
		sample.PDF = 1.0 / t.area
	}
	if t.HasEmission() {
		sample.Emission = t.Material.Emission()
	}
	return sample
}
