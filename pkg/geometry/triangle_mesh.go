package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// TriangleMesh represents a collection of triangles with efficient ray intersection
// It uses an internal BVH (Bounding Volume Hierarchy) for fast intersection tests.
// A mesh with an emissive material is a single area light: sampling picks a
// triangle proportionally to its area.
type TriangleMesh struct {
	Name      string
	triangles []*Triangle
	bvh       *BVH
	bbox      core.AABB
	material  material.Material
	cdf       []float64 // Running sum of triangle areas
	area      float64
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices
// vertices: array of 3D points
// faces: array of triangle indices (each group of 3 indices forms a triangle)
// material: material for all triangles
func NewTriangleMesh(vertices []core.Vec3, faces []int, material material.Material) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face index count %d is not a multiple of 3", len(faces))
	}

	triangles := make([]*Triangle, 0, len(faces)/3)
	for i := 0; i < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		for _, idx := range []int{i0, i1, i2} {
			if idx < 0 || idx >= len(vertices) {
				return nil, fmt.Errorf("face %d references vertex %d; mesh has %d vertices", i/3, idx, len(vertices))
			}
		}
		triangles = append(triangles, NewTriangle(vertices[i0], vertices[i1], vertices[i2], material))
	}

	return NewTriangleMeshFromTriangles(triangles, material), nil
}

// NewTriangleMeshFromTriangles wraps already-built triangles into a mesh
func NewTriangleMeshFromTriangles(triangles []*Triangle, material material.Material) *TriangleMesh {
	shapes := make([]Shape, len(triangles))
	cdf := make([]float64, len(triangles))
	var bbox core.AABB
	area := 0.0
	for i, tri := range triangles {
		shapes[i] = tri
		area += tri.Area()
		cdf[i] = area
		if i == 0 {
			bbox = tri.BoundingBox()
		} else {
			bbox = bbox.Union(tri.BoundingBox())
		}
	}

	return &TriangleMesh{
		triangles: triangles,
		bvh:       NewBVH(shapes),
		bbox:      bbox,
		material:  material,
		cdf:       cdf,
		area:      area,
	}
}

// Hit tests if a ray intersects with any triangle in the mesh
func (tm *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	return tm.bvh.Hit(ray, tMin, tMax)
}

// BoundingBox returns the axis-aligned bounding box for the entire mesh
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.bbox
}

// TriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.triangles)
}

// Triangles returns the individual triangles
func (tm *TriangleMesh) Triangles() []*Triangle {
	return tm.triangles
}

// Material returns the mesh material
func (tm *TriangleMesh) Material() material.Material {
	return tm.material
}

// HasEmission implements Emitter
func (tm *TriangleMesh) HasEmission() bool {
	return tm.material != nil && tm.material.HasEmission()
}

// Area returns the summed area of all triangles
func (tm *TriangleMesh) Area() float64 {
	return tm.area
}

// Sample selects a triangle with probability area_i/area and a uniform point on it.
// The resulting area density over the whole mesh is 1/area.
func (tm *TriangleMesh) Sample(sampler core.Sampler) SurfaceSample {
	if len(tm.triangles) == 0 || tm.area <= 0 {
		return SurfaceSample{}
	}

	target := sampler.Get1D() * tm.area
	idx := sort.SearchFloat64s(tm.cdf, target)
	if idx >= len(tm.triangles) {
		idx = len(tm.triangles) - 1
	}

	sample := tm.triangles[idx].Sample(sampler)
	sample.PDF = 1.0 / tm.area
	return sample
}
