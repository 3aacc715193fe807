package core

import (
	"math"
	"math/rand"
)

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// OrthonormalBasis builds a tangent frame (tangent, bitangent) around normal
func OrthonormalBasis(normal Vec3) (Vec3, Vec3) {
	var nt Vec3
	if math.Abs(normal.X) > 0.1 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}
	tangent := nt.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)
	return tangent, bitangent
}

// SampleCosineHemisphere generates a cosine-weighted random direction in hemisphere around normal.
// The density of the returned direction is cos(θ)/π.
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	a := 2.0 * math.Pi * sample.X
	r := math.Sqrt(sample.Y)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	z := math.Sqrt(math.Max(0, 1.0-sample.Y))

	tangent, bitangent := OrthonormalBasis(normal)
	return tangent.Multiply(x).Add(bitangent.Multiply(y)).Add(normal.Multiply(z))
}

// SampleUniformHemisphere generates a uniformly distributed direction in the hemisphere around normal.
// The density of the returned direction is 1/(2π).
func SampleUniformHemisphere(normal Vec3, sample Vec2) Vec3 {
	z := sample.X
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y

	tangent, bitangent := OrthonormalBasis(normal)
	return tangent.Multiply(r * math.Cos(phi)).
		Add(bitangent.Multiply(r * math.Sin(phi))).
		Add(normal.Multiply(z))
}

// SampleTriangle returns barycentric weights (b0, b1, b2) uniformly distributed over a triangle
func SampleTriangle(sample Vec2) (float64, float64, float64) {
	su := math.Sqrt(sample.X)
	b0 := 1.0 - su
	b1 := sample.Y * su
	return b0, b1, 1.0 - b0 - b1
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewVec3(x, y, z)
}
