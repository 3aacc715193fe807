package scene

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestNew_AllRegisteredScenes(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name)
			if err != nil {
				t.Fatalf("Failed to build scene: %v", err)
			}
			if s.Name != name {
				t.Errorf("Expected name %q, got %q", name, s.Name)
			}
			if s.Width <= 0 || s.Height <= 0 {
				t.Errorf("Invalid dimensions %dx%d", s.Width, s.Height)
			}
			if s.BVH == nil {
				t.Error("Expected BVH after preprocessing")
			}
			if len(s.Lights()) == 0 {
				t.Error("Expected at least one light")
			}
			if s.RussianRoulette() <= 0 || s.RussianRoulette() > 1 {
				t.Errorf("Invalid russian roulette probability %v", s.RussianRoulette())
			}
		})
	}
}

func TestNew_UnknownScene(t *testing.T) {
	_, err := New("nonexistent")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestNames_Sorted(t *testing.T) {
	names := Names()
	expected := []string{"cornell", "quadlight", "spheres"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, names)
		}
	}
}

func TestCornellScene(t *testing.T) {
	s, err := New("cornell")
	if err != nil {
		t.Fatalf("Failed to build scene: %v", err)
	}

	if s.Width != 784 || s.Height != 784 {
		t.Errorf("Expected 784x784, got %dx%d", s.Width, s.Height)
	}
	if s.FOV != 40 {
		t.Errorf("Expected fov 40, got %v", s.FOV)
	}
	if s.RussianRoulette() != 0.8 {
		t.Errorf("Expected RR 0.8, got %v", s.RussianRoulette())
	}

	// Ceiling light is a 130x105 rectangle
	if math.Abs(s.EmissiveArea()-130*105) > 1e-6 {
		t.Errorf("Expected emissive area %v, got %v", 130*105.0, s.EmissiveArea())
	}

	// floor(3 quads) + 2 boxes(5 quads each) + 2 walls + light, 2 triangles per quad
	if got := s.GetPrimitiveCount(); got != 2*(3+5+5+1+1+1) {
		t.Errorf("Expected %d triangles, got %d", 2*(3+5+5+1+1+1), got)
	}

	// Looking straight up from the floor center hits the light, whose normal faces down
	ray := core.NewRay(core.NewVec3(278, 1, 280), core.NewVec3(0, 1, 0))
	hit, ok := s.Intersect(ray)
	if !ok {
		t.Fatal("Expected a hit on the ceiling light")
	}
	if !hit.IsEmissive() {
		t.Errorf("Expected emissive hit, got point %v", hit.Point)
	}

	sampler := core.NewSeededSampler(1)
	for i := 0; i < 100; i++ {
		sample, ok := s.SampleLight(sampler)
		if !ok {
			t.Fatal("Expected a light sample")
		}
		if math.Abs(sample.Point.Y-548.7) > 1e-9 {
			t.Fatalf("Light sample off the light plane: %v", sample.Point)
		}
		if sample.Normal.Y > -0.99 {
			t.Fatalf("Expected downward light normal, got %v", sample.Normal)
		}
		if sample.Emission.IsZero() {
			t.Fatal("Expected non-zero emission")
		}
	}
}

func TestSpheresScene(t *testing.T) {
	s, err := New("spheres")
	if err != nil {
		t.Fatalf("Failed to build scene: %v", err)
	}

	if len(s.Lights()) != 2 {
		t.Fatalf("Expected quad and disc lights, got %d", len(s.Lights()))
	}
	expectedArea := 9 + math.Pi*0.75*0.75
	if math.Abs(s.EmissiveArea()-expectedArea) > 1e-9 {
		t.Errorf("Expected emissive area %v, got %v", expectedArea, s.EmissiveArea())
	}

	// Straight down the view axis through the middle spheres' gap hits the block
	hit, ok := s.Intersect(core.NewRay(core.NewVec3(0, 1.5, -10), core.NewVec3(0, 0, 1)))
	if !ok {
		t.Fatal("Expected to hit the block behind the spheres")
	}
	if hit.Point.Z < 2 || hit.Point.Z > 4 {
		t.Errorf("Expected hit on the block front, got %v", hit.Point)
	}
}

func TestSampleLight_AreaProportional(t *testing.T) {
	s := NewScene("two lights", 10, 10, 40, core.Vec3{})
	light := material.NewEmissive(core.NewVec3(1, 1, 1))

	small := NewCeilingQuad(core.NewVec3(-5, 3, 0), 1, light) // area 1
	large := NewCeilingQuad(core.NewVec3(5, 3, 0), 2, light)  // area 4
	s.Add(small, large, NewGroundQuad(core.Vec3{}, 20, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))
	if err := s.Preprocess(); err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}

	if len(s.Lights()) != 2 {
		t.Fatalf("Expected 2 lights, got %d", len(s.Lights()))
	}
	if math.Abs(s.EmissiveArea()-5) > 1e-9 {
		t.Fatalf("Expected emissive area 5, got %v", s.EmissiveArea())
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	const n = 20000
	largeCount := 0
	for i := 0; i < n; i++ {
		sample, ok := s.SampleLight(sampler)
		if !ok {
			t.Fatal("Expected a light sample")
		}
		if math.Abs(sample.PDF-1.0/5.0) > 1e-9 {
			t.Fatalf("Expected joint pdf 1/5, got %v", sample.PDF)
		}
		if sample.Point.X > 0 {
			largeCount++
		}
	}

	frac := float64(largeCount) / n
	if math.Abs(frac-0.8) > 0.02 {
		t.Errorf("Expected large light chosen ~80%% of the time, got %.3f", frac)
	}
}

func TestSampleLight_NoLights(t *testing.T) {
	s := NewScene("dark", 10, 10, 40, core.Vec3{})
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 5), 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))
	if err := s.Preprocess(); err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}

	if _, ok := s.SampleLight(core.NewSeededSampler(1)); ok {
		t.Error("Expected no light sample in a scene without emitters")
	}
}

func TestPreprocess_RejectsInvalidRussianRoulette(t *testing.T) {
	for _, rr := range []float64{0, -0.5, 1.5} {
		s := NewScene("bad", 10, 10, 40, core.Vec3{})
		s.RR = rr
		if err := s.Preprocess(); err == nil {
			t.Errorf("Expected error for RR=%v", rr)
		}
	}
}

func TestIntersect_EmptyScene(t *testing.T) {
	s := NewScene("empty", 10, 10, 40, core.Vec3{})
	if _, ok := s.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))); ok {
		t.Error("Expected no hit before preprocessing")
	}
	if err := s.Preprocess(); err != nil {
		t.Fatalf("Preprocess failed: %v", err)
	}
	if _, ok := s.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))); ok {
		t.Error("Expected no hit in an empty scene")
	}
}
