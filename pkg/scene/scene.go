package scene

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/log"
)

// ErrUnknownScene is returned by New for names that are not registered
var ErrUnknownScene = errors.New("scene: unknown scene")

// intersectEpsilon keeps secondary rays from re-hitting their origin surface
const intersectEpsilon = 1e-4

var logger = log.New("scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	Width  int       // Image width
	Height int       // Image height
	FOV    float64   // Vertical field of view in degrees
	Eye    core.Vec3 // Camera position; the camera looks down +Z
	RR     float64   // Russian roulette continuation probability

	Shapes []geometry.Shape // Objects in the scene
	BVH    *geometry.BVH    // Acceleration structure for ray-object intersection

	lights   []geometry.Emitter
	lightCDF []float64 // Running sum of emitter areas
	emitArea float64
}

// NewScene creates an empty scene with the given image settings
func NewScene(name string, width, height int, fov float64, eye core.Vec3) *Scene {
	return &Scene{
		Name:   name,
		Width:  width,
		Height: height,
		FOV:    fov,
		Eye:    eye,
		RR:     0.8,
	}
}

// Add appends shapes to the scene. Preprocess must be called afterwards.
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Preprocess builds the BVH and collects the emissive shapes
func (s *Scene) Preprocess() error {
	if s.RR <= 0 || s.RR > 1 {
		return fmt.Errorf("scene %q: russian roulette probability %v outside (0, 1]", s.Name, s.RR)
	}

	s.BVH = geometry.NewBVH(s.Shapes)

	s.lights = s.lights[:0]
	s.lightCDF = s.lightCDF[:0]
	s.emitArea = 0
	for _, shape := range s.Shapes {
		emitter, ok := shape.(geometry.Emitter)
		if !ok || !emitter.HasEmission() || emitter.Area() <= 0 {
			continue
		}
		s.emitArea += emitter.Area()
		s.lights = append(s.lights, emitter)
		s.lightCDF = append(s.lightCDF, s.emitArea)
	}

	logger.Debugf("scene %q: %d shapes, %d emitters, emissive area %.2f", s.Name, len(s.Shapes), len(s.lights), s.emitArea)
	return nil
}

// Intersect returns the closest hit along the ray
func (s *Scene) Intersect(ray core.Ray) (*geometry.HitRecord, bool) {
	if s.BVH == nil {
		return nil, false
	}
	return s.BVH.Hit(ray, intersectEpsilon, math.Inf(1))
}

// SampleLight picks an emitter with probability proportional to its area and
// a uniform point on it. The returned PDF is the joint area density, which is
// 1/EmissiveArea for every point on every light.
func (s *Scene) SampleLight(sampler core.Sampler) (geometry.SurfaceSample, bool) {
	if len(s.lights) == 0 || s.emitArea <= 0 {
		return geometry.SurfaceSample{}, false
	}

	target := sampler.Get1D() * s.emitArea
	idx := sort.SearchFloat64s(s.lightCDF, target)
	if idx >= len(s.lights) {
		idx = len(s.lights) - 1
	}

	light := s.lights[idx]
	sample := light.Sample(sampler)
	sample.PDF *= light.Area() / s.emitArea
	return sample, sample.PDF > 0
}

// RussianRoulette returns the continuation probability for indirect bounces
func (s *Scene) RussianRoulette() float64 {
	return s.RR
}

// EmissiveArea returns the summed area of all emitters
func (s *Scene) EmissiveArea() float64 {
	return s.emitArea
}

// Lights returns the emissive shapes found by Preprocess
func (s *Scene) Lights() []geometry.Emitter {
	return s.lights
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		if mesh, ok := shape.(*geometry.TriangleMesh); ok {
			count += mesh.TriangleCount()
		} else {
			count++
		}
	}
	return count
}
