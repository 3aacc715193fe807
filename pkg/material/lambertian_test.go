package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestLambertian_PDFCalculation(t *testing.T) {
	tests := []struct {
		name     string
		material *Lambertian
		expected func(cosTheta float64) float64
	}{
		{
			name:     "Cosine weighted",
			material: NewLambertian(core.NewVec3(0.8, 0.8, 0.8)),
			expected: func(cosTheta float64) float64 { return cosTheta / math.Pi },
		},
		{
			name:     "Uniform hemisphere",
			material: NewUniformLambertian(core.NewVec3(0.8, 0.8, 0.8)),
			expected: func(float64) float64 { return 1.0 / (2.0 * math.Pi) },
		},
	}

	normal := core.NewVec3(0, 0, 1)
	wo := core.NewVec3(0, 0, 1)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
			for i := 0; i < 100; i++ {
				wi := tt.material.Sample(wo, normal, sampler)
				pdf := tt.material.PDF(wi, wo, normal)
				if wi.Dot(normal) > 0 && math.Abs(pdf-tt.expected(wi.Dot(normal))) > 1e-10 {
					t.Errorf("PDF mismatch: got %f, expected %f", pdf, tt.expected(wi.Dot(normal)))
				}
			}
		})
	}
}

func TestLambertian_PDFBelowSurfaceIsZero(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	below := core.NewVec3(0.3, -1, 0).Normalize()

	for _, m := range []*Lambertian{NewLambertian(core.NewVec3(1, 1, 1)), NewUniformLambertian(core.NewVec3(1, 1, 1))} {
		if pdf := m.PDF(below, normal, normal); pdf != 0 {
			t.Errorf("Expected zero PDF below the surface, got %f", pdf)
		}
	}
}

func TestLambertian_Eval(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.25, 1.0)
	lambertian := NewLambertian(albedo)
	normal := core.NewVec3(0, 1, 0)

	got := lambertian.Eval(normal, normal, normal)
	expected := albedo.Multiply(1.0 / math.Pi)
	if got.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	// Viewer behind the surface
	if got := lambertian.Eval(normal, normal.Negate(), normal); !got.IsZero() {
		t.Errorf("Expected zero BRDF for viewer below surface, got %v", got)
	}

	if lambertian.HasEmission() || !lambertian.Emission().IsZero() {
		t.Error("Lambertian must not emit")
	}
}

// The white-furnace check: ∫ f cos / pdf over the sampling distribution equals the albedo.
func TestLambertian_EnergyConservation(t *testing.T) {
	albedo := core.NewVec3(0.7, 0.7, 0.7)
	normal := core.NewVec3(0, 1, 0)

	for _, m := range []*Lambertian{NewLambertian(albedo), NewUniformLambertian(albedo)} {
		sampler := core.NewSeededSampler(99)
		const n = 100000
		sum := 0.0
		for i := 0; i < n; i++ {
			wi := m.Sample(normal, normal, sampler)
			pdf := m.PDF(wi, normal, normal)
			if pdf <= 0 {
				continue
			}
			sum += m.Eval(wi, normal, normal).X * wi.Dot(normal) / pdf
		}
		estimate := sum / n
		if math.Abs(estimate-albedo.X) > 0.01 {
			t.Errorf("Expected reflected fraction ~%f, got %f", albedo.X, estimate)
		}
	}
}
