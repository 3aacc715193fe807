package loaders

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

const quadOBJ = `# unit quad
o panel
v 0 0 0
v 1 0 0
v 1 0 1
v 0 0 1
f 1 2 3 4
`

func TestParseOBJ_QuadIsTriangulated(t *testing.T) {
	data, err := ParseOBJ(strings.NewReader(quadOBJ), "quad.obj")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if data.Name != "panel" {
		t.Errorf("Expected object name 'panel', got %q", data.Name)
	}
	if len(data.Vertices) != 4 {
		t.Errorf("Expected 4 vertices, got %d", len(data.Vertices))
	}
	if data.TriangleCount() != 2 {
		t.Fatalf("Expected 2 triangles, got %d", data.TriangleCount())
	}

	expected := []int{0, 1, 2, 0, 2, 3}
	for i, idx := range expected {
		if data.Faces[i] != idx {
			t.Errorf("Face index %d: expected %d, got %d", i, idx, data.Faces[i])
		}
	}
}

func TestParseOBJ_IndexForms(t *testing.T) {
	tests := []struct {
		name  string
		face  string
		faces []int
	}{
		{"vertex only", "f 1 2 3", []int{0, 1, 2}},
		{"vertex/texture", "f 1/1 2/2 3/3", []int{0, 1, 2}},
		{"vertex//normal", "f 1//1 2//1 3//1", []int{0, 1, 2}},
		{"vertex/texture/normal", "f 3/1/1 2/2/1 1/3/1", []int{2, 1, 0}},
		{"negative indices", "f -3 -2 -1", []int{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "v 0 0 0\nv 1 0 0\nv 0 1 0\n" + tt.face + "\n"
			data, err := ParseOBJ(strings.NewReader(src), "tri.obj")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			for i, idx := range tt.faces {
				if data.Faces[i] != idx {
					t.Errorf("Expected faces %v, got %v", tt.faces, data.Faces)
					break
				}
			}
		})
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line string
	}{
		{"short vertex", "v 1 2\n", "[bad.obj: 1]"},
		{"bad float", "v 1 two 3\n", "[bad.obj: 1]"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n", "[bad.obj: 4]"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", "[bad.obj: 4]"},
		{"two vertex face", "v 0 0 0\nv 1 0 0\nf 1 2\n", "[bad.obj: 3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tt.src), "bad.obj")
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.line) {
				t.Errorf("Expected error to carry location %s, got %v", tt.line, err)
			}
		})
	}

	_, err := ParseOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nf 1 2\n"), "bad.obj")
	if !errors.Is(err, ErrUnsupportedFace) {
		t.Errorf("Expected ErrUnsupportedFace, got %v", err)
	}
}

func TestLoadOBJFile_BuildsMesh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "light.obj")
	if err := os.WriteFile(path, []byte(quadOBJ), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	mesh, err := LoadOBJFile(path, material.NewEmissive(core.NewVec3(1, 1, 1)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mesh.Name != "panel" {
		t.Errorf("Expected mesh name 'panel', got %q", mesh.Name)
	}
	if !mesh.HasEmission() {
		t.Error("Expected emissive mesh")
	}
	if math.Abs(mesh.Area()-1) > 1e-12 {
		t.Errorf("Expected area 1, got %f", mesh.Area())
	}

	if _, err := LoadOBJFile(filepath.Join(t.TempDir(), "missing.obj"), nil); err == nil {
		t.Error("Expected error for missing file")
	}
}
