package scene

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

//go:embed models/*.obj
var models embed.FS

// cornellLightEmission mixes three spectral peaks into the light's RGB radiance
var cornellLightEmission = core.NewVec3(0.747+0.058, 0.747+0.258, 0.747).Multiply(8.0).
	Add(core.NewVec3(0.740+0.287, 0.740+0.160, 0.740).Multiply(15.6)).
	Add(core.NewVec3(0.737+0.642, 0.737+0.159, 0.737).Multiply(18.4))

// NewCornellScene assembles the Cornell box from the embedded OBJ models
func NewCornellScene() (*Scene, error) {
	s := NewScene("cornell", 784, 784, 40, core.NewVec3(278, 273, -800))

	red := material.NewLambertian(core.NewVec3(0.63, 0.065, 0.05))
	green := material.NewLambertian(core.NewVec3(0.14, 0.45, 0.091))
	white := material.NewLambertian(core.NewVec3(0.725, 0.71, 0.68))
	light := material.NewEmissive(cornellLightEmission)

	parts := []struct {
		file string
		mat  material.Material
	}{
		{"floor.obj", white},
		{"shortbox.obj", white},
		{"tallbox.obj", white},
		{"left.obj", red},
		{"right.obj", green},
		{"light.obj", light},
	}

	for _, part := range parts {
		src, err := models.ReadFile("models/" + part.file)
		if err != nil {
			return nil, fmt.Errorf("cornell: %w", err)
		}
		mesh, err := loaders.LoadOBJ(bytes.NewReader(src), part.file, part.mat)
		if err != nil {
			return nil, fmt.Errorf("cornell: %w", err)
		}
		s.Add(mesh)
	}

	return s, nil
}
