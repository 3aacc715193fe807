package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box represents a rectangular block made up of 6 quads, rotated about the Y axis
type Box struct {
	Center   core.Vec3         // Center point of the box
	Size     core.Vec3         // Half-extents along each local axis
	Yaw      float64           // Rotation about +Y in radians
	Material material.Material // Material for all faces
	faces    [6]*Quad
	bbox     core.AABB
}

// NewBox creates a new box. Size holds half-extents, so (1,1,1) is a 2x2x2 box.
func NewBox(center, size core.Vec3, yaw float64, material material.Material) *Box {
	box := &Box{
		Center:   center,
		Size:     size,
		Yaw:      yaw,
		Material: material,
	}
	box.generateFaces()
	return box
}

// NewAxisAlignedBox creates a box with no rotation
func NewAxisAlignedBox(center, size core.Vec3, material material.Material) *Box {
	return NewBox(center, size, 0, material)
}

// generateFaces creates the 6 quad faces with outward normals
func (b *Box) generateFaces() {
	corners := [8]core.Vec3{
		core.NewVec3(-1, -1, -1), // 0: left-bottom-back
		core.NewVec3(1, -1, -1),  // 1: right-bottom-back
		core.NewVec3(1, 1, -1),   // 2: right-top-back
		core.NewVec3(-1, 1, -1),  // 3: left-top-back
		core.NewVec3(-1, -1, 1),  // 4: left-bottom-front
		core.NewVec3(1, -1, 1),   // 5: right-bottom-front
		core.NewVec3(1, 1, 1),    // 6: right-top-front
		core.NewVec3(-1, 1, 1),   // 7: left-top-front
	}

	sin, cos := math.Sincos(b.Yaw)
	for i, c := range corners {
		scaled := c.MultiplyVec(b.Size)
		rotated := core.NewVec3(
			cos*scaled.X+sin*scaled.Z,
			scaled.Y,
			-sin*scaled.X+cos*scaled.Z,
		)
		corners[i] = rotated.Add(b.Center)
	}

	face := func(origin, uEnd, vEnd int) *Quad {
		return NewQuad(
			corners[origin],
			corners[uEnd].Subtract(corners[origin]),
			corners[vEnd].Subtract(corners[origin]),
			b.Material,
		)
	}

	b.faces[0] = face(4, 5, 7) // Front (Z+)
	b.faces[1] = face(1, 0, 2) // Back (Z-)
	b.faces[2] = face(5, 1, 6) // Right (X+)
	b.faces[3] = face(0, 4, 3) // Left (X-)
	b.faces[4] = face(3, 7, 2) // Top (Y+)
	b.faces[5] = face(4, 0, 5) // Bottom (Y-)

	b.bbox = core.NewAABBFromPoints(corners[:]...)
}

// Faces returns the six quads
func (b *Box) Faces() [6]*Quad {
	return b.faces
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closestHit *HitRecord
	closestT := tMax

	for _, face := range b.faces {
		if hit, isHit := face.Hit(ray, tMin, closestT); isHit {
			closestT = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox() core.AABB {
	return b.bbox
}
