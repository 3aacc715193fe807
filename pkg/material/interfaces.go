package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material describes how a surface scatters and emits light.
//
// Direction conventions: wi points from the surface toward the light or the
// next surface, wo points from the surface toward the viewer. Both are unit
// vectors leaving the surface.
type Material interface {
	// HasEmission reports whether the surface is a light source
	HasEmission() bool

	// Emission returns the emitted radiance (zero for non-emitters)
	Emission() core.Vec3

	// Eval evaluates the BRDF for the given pair of directions
	Eval(wi, wo, normal core.Vec3) core.Vec3

	// Sample draws an incoming direction wi from the material's importance distribution
	Sample(wo, normal core.Vec3, sampler core.Sampler) core.Vec3

	// PDF returns the solid-angle density Sample assigns to wi
	PDF(wi, wo, normal core.Vec3) float64
}
