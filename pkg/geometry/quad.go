package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Quad represents a parallelogram surface defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3         // One corner of the quad
	U        core.Vec3         // First edge vector
	V        core.Vec3         // Second edge vector
	Normal   core.Vec3         // Normal vector (computed from U × V)
	Material material.Material // Material of the quad
	D        float64           // Plane equation constant: ax + by + cz = d
	W        core.Vec3         // Cached vector for barycentric coordinates
	area     float64
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material material.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		D:        normal.Dot(corner),
		W:        normal.Multiply(1.0 / normal.Dot(cross)),
		area:     cross.Length(),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray is parallel to the quad
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)

	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hitRecord := &HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	).Expand(1e-4)
}

// HasEmission implements Emitter
func (q *Quad) HasEmission() bool {
	return q.Material != nil && q.Material.HasEmission()
}

// Area returns |U × V|
func (q *Quad) Area() float64 {
	return q.area
}

// Sample picks a point uniformly on the quad
func (q *Quad) Sample(sampler core.Sampler) SurfaceSample {
	s := sampler.Get2D()
	sample := SurfaceSample{
		Point:  q.Corner.Add(q.U.Multiply(s.X)).Add(q.V.Multiply(s.Y)),
		Normal: q.Normal,
	}
	if q.area > 0 {
		sample.PDF = 1.0 / q.area
	}
	if q.HasEmission() {
		sample.Emission = q.Material.Emission()
	}
	return sample
}
