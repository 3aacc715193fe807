package scene

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewSpheresScene lays out a row of diffuse spheres in front of a block, lit
// by an overhead quad and a smaller disc to the side
func NewSpheresScene() (*Scene, error) {
	s := NewScene("spheres", 640, 360, 40, core.NewVec3(0, 2, -10))

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	light := material.NewEmissive(core.NewVec3(12, 11, 10))
	warm := material.NewEmissive(core.NewVec3(15, 9, 4))

	s.Add(
		NewGroundQuad(core.NewVec3(0, 0, 0), 40, ground),
		NewCeilingQuad(core.NewVec3(0, 6, 0), 3, light),
		geometry.NewDisc(core.NewVec3(-6, 3, -2), core.NewVec3(1, -0.5, 0.3), 0.75, warm),
		geometry.NewBox(core.NewVec3(0, 1.5, 3), core.NewVec3(3, 1.5, 0.5), math.Pi/12, ground),
	)

	albedos := []core.Vec3{
		core.NewVec3(0.8, 0.2, 0.2),
		core.NewVec3(0.2, 0.8, 0.2),
		core.NewVec3(0.2, 0.2, 0.8),
		core.NewVec3(0.8, 0.8, 0.2),
	}
	for i, albedo := range albedos {
		x := -3.0 + 2.0*float64(i)
		s.Add(geometry.NewSphere(core.NewVec3(x, 0.8, 0), 0.8, material.NewLambertian(albedo)))
	}

	// Small front sphere samples bounces uniformly over the hemisphere
	s.Add(geometry.NewSphere(core.NewVec3(0, 0.5, -2), 0.5, material.NewUniformLambertian(core.NewVec3(0.9, 0.9, 0.9))))

	return s, nil
}
