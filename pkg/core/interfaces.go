package core

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns.
// Implementations are not safe for concurrent use; every worker owns one.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}
