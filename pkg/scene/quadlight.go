package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewGroundQuad creates a horizontal quad centered at the given point with normal pointing up (0,1,0)
func NewGroundQuad(center core.Vec3, size float64, material material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0,0,size) × (size,0,0) = (0,size²,0)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, material)
}

// NewCeilingQuad creates a horizontal quad whose normal points down (0,-1,0)
func NewCeilingQuad(center core.Vec3, size float64, material material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	u := core.NewVec3(size, 0, 0)
	v := core.NewVec3(0, 0, size)
	return geometry.NewQuad(corner, u, v, material)
}

// NewQuadLightScene places a square area light above a large diffuse floor
func NewQuadLightScene() (*Scene, error) {
	s := NewScene("quadlight", 400, 300, 45, core.NewVec3(0, 3, -8))

	floor := material.NewLambertian(core.NewVec3(0.7, 0.7, 0.7))
	light := material.NewEmissive(core.NewVec3(10, 10, 10))

	s.Add(
		NewGroundQuad(core.NewVec3(0, 0, 0), 20, floor),
		NewCeilingQuad(core.NewVec3(0, 4, 0), 2, light),
	)
	return s, nil
}
