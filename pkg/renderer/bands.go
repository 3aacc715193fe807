package renderer

import (
	"runtime"

	"github.com/shirou/gopsutil/cpu"
)

// Band is a contiguous range of image rows [Start, End) rendered by one worker
type Band struct {
	Index int
	Start int
	End   int
}

// Rows returns the number of rows in the band
func (b Band) Rows() int {
	return b.End - b.Start
}

// PartitionRows splits height rows into at most workers bands of
// ceil(height/workers) rows. The last band takes whatever remains and may be
// smaller; trailing workers may receive no band at all.
func PartitionRows(height, workers int) []Band {
	if height <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}

	bandSize := (height + workers - 1) / workers
	bands := make([]Band, 0, workers)
	for start := 0; start < height; start += bandSize {
		bands = append(bands, Band{
			Index: len(bands),
			Start: start,
			End:   min(start+bandSize, height),
		})
	}
	return bands
}

// HardwareConcurrency returns the number of logical CPUs, never less than 1
func HardwareConcurrency() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		n = runtime.NumCPU()
	}
	return max(n, 1)
}
