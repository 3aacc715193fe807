package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Disc represents a one-sided circular disc
type Disc struct {
	Center   core.Vec3         // Center of the disc
	Normal   core.Vec3         // Normal vector (pointing "up" from the disc)
	Radius   float64           // Radius of the disc
	Material material.Material // Material of the disc
	Right    core.Vec3         // Right vector (perpendicular to normal)
	Up       core.Vec3         // Up vector (perpendicular to normal and right)
}

// NewDisc creates a new disc
func NewDisc(center, normal core.Vec3, radius float64, material material.Material) *Disc {
	n := normal.Normalize()
	right, up := core.OrthonormalBasis(n)

	return &Disc{
		Center:   center,
		Normal:   n,
		Radius:   radius,
		Material: material,
		Right:    right,
		Up:       up,
	}
}

// Hit implements the Shape interface
func (d *Disc) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	denom := d.Normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-8 {
		return nil, false
	}

	t := d.Normal.Dot(d.Center.Subtract(ray.Origin)) / denom
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	if hitPoint.Subtract(d.Center).LengthSquared() > d.Radius*d.Radius {
		return nil, false
	}

	hitRecord := &HitRecord{
		Point:    hitPoint,
		T:        t,
		Material: d.Material,
	}
	hitRecord.SetFaceNormal(ray, d.Normal)

	return hitRecord, true
}

// BoundingBox implements the Shape interface
func (d *Disc) BoundingBox() core.AABB {
	// Extent along each world axis is r·sqrt(1 - n_axis²)
	extent := core.NewVec3(
		d.Radius*math.Sqrt(max(0, 1-d.Normal.X*d.Normal.X)),
		d.Radius*math.Sqrt(max(0, 1-d.Normal.Y*d.Normal.Y)),
		d.Radius*math.Sqrt(max(0, 1-d.Normal.Z*d.Normal.Z)),
	)
	return core.NewAABB(d.Center.Subtract(extent), d.Center.Add(extent)).Expand(1e-4)
}

// HasEmission implements Emitter
func (d *Disc) HasEmission() bool {
	return d.Material != nil && d.Material.HasEmission()
}

// Area returns πr²
func (d *Disc) Area() float64 {
	return math.Pi * d.Radius * d.Radius
}

// Sample picks a point uniformly on the disc using polar coordinates
func (d *Disc) Sample(sampler core.Sampler) SurfaceSample {
	s := sampler.Get2D()
	r := math.Sqrt(s.X) * d.Radius
	theta := 2.0 * math.Pi * s.Y

	sample := SurfaceSample{
		Point:  d.Center.Add(d.Right.Multiply(r * math.Cos(theta))).Add(d.Up.Multiply(r * math.Sin(theta))),
		Normal: d.Normal,
	}
	if area := d.Area(); area > 0 {
		sample.PDF = 1.0 / area
	}
	if d.HasEmission() {
		sample.Emission = d.Material.Emission()
	}
	return sample
}
