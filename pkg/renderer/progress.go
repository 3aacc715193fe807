package renderer

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// ProgressReporter receives the fraction of completed rows in [0, 1]
type ProgressReporter interface {
	Report(fraction float64)
}

// ProgressFunc adapts a function to ProgressReporter
type ProgressFunc func(fraction float64)

// Report implements ProgressReporter
func (f ProgressFunc) Report(fraction float64) {
	f(fraction)
}

// RowCounter counts finished rows across workers. Incrementing and reporting
// happen under one lock, so reported fractions never decrease.
type RowCounter struct {
	mu       sync.Mutex
	done     int
	total    int
	reporter ProgressReporter
}

// NewRowCounter creates a counter for total rows. reporter may be nil.
func NewRowCounter(total int, reporter ProgressReporter) *RowCounter {
	return &RowCounter{total: total, reporter: reporter}
}

// Increment records one finished row and reports the new fraction
func (c *RowCounter) Increment() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.done++
	if c.reporter != nil && c.total > 0 {
		c.reporter.Report(float64(c.done) / float64(c.total))
	}
}

// Finish reports completion
func (c *RowCounter) Finish() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.reporter != nil {
		c.reporter.Report(1.0)
	}
}

// Rows returns the number of finished rows
func (c *RowCounter) Rows() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// ConsoleProgress draws a text progress bar, rewriting the same line
type ConsoleProgress struct {
	w        io.Writer
	barWidth int
	finished bool
}

// NewConsoleProgress creates a progress bar of barWidth characters
func NewConsoleProgress(w io.Writer, barWidth int) *ConsoleProgress {
	return &ConsoleProgress{w: w, barWidth: max(barWidth, 1)}
}

// Report implements ProgressReporter
func (p *ConsoleProgress) Report(fraction float64) {
	if p.finished {
		return
	}
	fraction = min(max(fraction, 0), 1)

	pos := int(float64(p.barWidth) * fraction)
	var bar strings.Builder
	for i := 0; i < p.barWidth; i++ {
		switch {
		case i < pos:
			bar.WriteByte('=')
		case i == pos:
			bar.WriteByte('>')
		default:
			bar.WriteByte(' ')
		}
	}

	fmt.Fprintf(p.w, "[%s] %d %%\r", bar.String(), int(fraction*100))
	if fraction >= 1 {
		fmt.Fprintln(p.w)
		p.finished = true
	}
}
