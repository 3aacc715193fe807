package renderer

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Gamma is the exponent applied to clamped radiance before quantization
const Gamma = 0.6

// ToneMap clamps each channel to [0,1], applies the gamma curve and scales to
// 8 bits. Values are truncated, not rounded.
func ToneMap(c core.Vec3) [3]uint8 {
	return [3]uint8{toneMapChannel(c.X), toneMapChannel(c.Y), toneMapChannel(c.Z)}
}

func toneMapChannel(v float64) uint8 {
	// NaN fails both comparisons and maps to black
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(255 * math.Pow(v, Gamma))
}

// WritePPM encodes the framebuffer as a binary (P6) PPM
func WritePPM(w io.Writer, fb *Framebuffer) error {
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}

	row := make([]byte, 3*fb.Width)
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			rgb := ToneMap(fb.At(i, j))
			copy(row[3*i:], rgb[:])
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// SavePPM writes the framebuffer to path, creating parent directories as needed
func SavePPM(path string, fb *Framebuffer) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	buf := bufio.NewWriter(f)
	if err := WritePPM(buf, fb); err != nil {
		f.Close()
		return fmt.Errorf("failed to write image: %w", err)
	}
	if err := buf.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write image: %w", err)
	}
	return f.Close()
}
