package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrUnsupportedFace is returned for faces with fewer than three vertices
var ErrUnsupportedFace = errors.New("loaders: face needs at least 3 vertices")

// OBJData contains the geometry read from a Wavefront OBJ file
type OBJData struct {
	Name     string      // Object name ("o" record) or the file name
	Vertices []core.Vec3 // Vertex positions
	Faces    []int       // Triangle indices (3 per triangle), 0-based
}

// TriangleCount returns the number of triangles after triangulation
func (d *OBJData) TriangleCount() int {
	return len(d.Faces) / 3
}

// Mesh builds a triangle mesh with a single material from the parsed data
func (d *OBJData) Mesh(mat material.Material) (*geometry.TriangleMesh, error) {
	mesh, err := geometry.NewTriangleMesh(d.Vertices, d.Faces, mat)
	if err != nil {
		return nil, fmt.Errorf("obj %q: %w", d.Name, err)
	}
	mesh.Name = d.Name
	return mesh, nil
}

// LoadOBJFile reads an OBJ file from disk and builds a mesh with the given material
func LoadOBJFile(path string, mat material.Material) (*geometry.TriangleMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open obj file: %w", err)
	}
	defer f.Close()

	return LoadOBJ(f, filepath.Base(path), mat)
}

// LoadOBJ parses an OBJ stream and builds a mesh with the given material
func LoadOBJ(r io.Reader, name string, mat material.Material) (*geometry.TriangleMesh, error) {
	data, err := ParseOBJ(r, name)
	if err != nil {
		return nil, err
	}
	return data.Mesh(mat)
}

// ParseOBJ parses vertex ("v") and face ("f") records. Faces may use the
// v, v/vt, v//vn and v/vt/vn forms and negative (relative) indices; polygons
// are fan-triangulated. Texture coordinates, normals, groups and material
// libraries are skipped.
func ParseOBJ(r io.Reader, name string) (*OBJData, error) {
	data := &OBJData{Name: name}

	lineNum := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return nil, parseError(name, lineNum, err)
			}
			data.Vertices = append(data.Vertices, v)
		case "f":
			indices, err := parseFace(lineTokens, len(data.Vertices))
			if err != nil {
				return nil, parseError(name, lineNum, err)
			}
			for i := 1; i+1 < len(indices); i++ {
				data.Faces = append(data.Faces, indices[0], indices[i], indices[i+1])
			}
		case "o":
			if len(lineTokens) > 1 {
				data.Name = lineTokens[1]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("obj %q: %w", name, err)
	}

	return data, nil
}

func parseError(file string, line int, err error) error {
	return fmt.Errorf("[%s: %d] %w", file, line, err)
}

// parseFace resolves the vertex index of every face argument
func parseFace(lineTokens []string, vertexCount int) ([]int, error) {
	if len(lineTokens) < 4 {
		return nil, ErrUnsupportedFace
	}

	indices := make([]int, 0, len(lineTokens)-1)
	for arg, token := range lineTokens[1:] {
		vToken, _, _ := strings.Cut(token, "/")
		if vToken == "" {
			return nil, fmt.Errorf("face argument %d does not include a vertex index", arg)
		}
		idx, err := selectFaceCoordIndex(vToken, vertexCount)
		if err != nil {
			return nil, fmt.Errorf("could not parse vertex index for face argument %d: %w", arg, err)
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

// selectFaceCoordIndex converts a 1-based or negative OBJ index to a 0-based offset
func selectFaceCoordIndex(indexToken string, coordListLen int) (int, error) {
	index, err := strconv.Atoi(indexToken)
	if err != nil {
		return -1, err
	}

	offset := index - 1
	if index < 0 {
		offset = coordListLen + index
	}
	if index == 0 || offset < 0 || offset >= coordListLen {
		return -1, fmt.Errorf("index %d out of bounds (%d vertices)", index, coordListLen)
	}
	return offset, nil
}

func parseVec3(lineTokens []string) (core.Vec3, error) {
	if len(lineTokens) < 4 {
		return core.Vec3{}, fmt.Errorf(`unsupported syntax for "%s"; expected 3 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	var coords [3]float64
	for i := range coords {
		val, err := strconv.ParseFloat(lineTokens[i+1], 64)
		if err != nil {
			return core.Vec3{}, err
		}
		coords[i] = val
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}
