package renderer

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestToneMap(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected uint8
	}{
		{"black", 0, 0},
		{"negative", -2, 0},
		{"NaN", math.NaN(), 0},
		{"half", 0.5, uint8(255 * math.Pow(0.5, 0.6))},
		{"one", 1, 255},
		{"overexposed", 12.5, 255},
		{"positive infinity", math.Inf(1), 255},
		{"small", 0.01, uint8(255 * math.Pow(0.01, 0.6))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToneMap(core.NewVec3(tt.input, tt.input, tt.input))
			for c := 0; c < 3; c++ {
				if got[c] != tt.expected {
					t.Errorf("Channel %d: expected %d, got %d", c, tt.expected, got[c])
				}
			}
		})
	}

	if got := ToneMap(core.NewVec3(0.5, 0, 2)); got != [3]uint8{168, 0, 255} {
		t.Errorf("Expected per-channel mapping [168 0 255], got %v", got)
	}
}

func TestWritePPM(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Set(0, 0, core.NewVec3(1, 0, 0))
	fb.Set(2, 1, core.NewVec3(0, 0, 1))

	var buf bytes.Buffer
	if err := WritePPM(&buf, fb); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	header := "P6\n3 2\n255\n"
	data := buf.Bytes()
	if !bytes.HasPrefix(data, []byte(header)) {
		t.Fatalf("Expected header %q, got %q", header, data[:min(len(data), len(header))])
	}

	pixels := data[len(header):]
	if len(pixels) != 3*2*3 {
		t.Fatalf("Expected %d pixel bytes, got %d", 18, len(pixels))
	}
	if !bytes.Equal(pixels[0:3], []byte{255, 0, 0}) {
		t.Errorf("Expected first pixel red, got %v", pixels[0:3])
	}
	if !bytes.Equal(pixels[15:18], []byte{0, 0, 255}) {
		t.Errorf("Expected last pixel blue, got %v", pixels[15:18])
	}
	for _, b := range pixels[3:15] {
		if b != 0 {
			t.Errorf("Expected black pixels in the middle, got %v", pixels[3:15])
			break
		}
	}
}

func TestSavePPM(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	for i := range fb.Pixels {
		fb.Pixels[i] = core.NewVec3(0.5, 0.5, 0.5)
	}

	path := filepath.Join(t.TempDir(), "nested", "out.ppm")
	if err := SavePPM(path, fb); err != nil {
		t.Fatalf("SavePPM failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	header := fmt.Sprintf("P6\n%d %d\n255\n", 4, 4)
	if len(data) != len(header)+4*4*3 {
		t.Errorf("Expected %d bytes, got %d", len(header)+48, len(data))
	}
}
