// internal/progress/progress.go

// Package progress notifies an observer as files are processed.
// Reporters are purely observational and must not affect control flow.
package progress

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives advancement signals from the batch driver.
type Reporter interface {
	Start(total int)
	Advance()
	Finish()
}

// Nop discards all progress signals.
type Nop struct{}

func (Nop) Start(int) {}
func (Nop) Advance()  {}
func (Nop) Finish()   {}

// Bar renders a terminal progress bar on stderr.
type Bar struct {
	bar *progressbar.ProgressBar
}

// NewBar creates an unstarted progress bar reporter.
func NewBar() *Bar {
	return &Bar{}
}

func (b *Bar) Start(total int) {
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Processing files"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(20),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionClearOnFinish(),
	)
}

func (b *Bar) Advance() {
	if b.bar != nil {
		_ = b.bar.Add(1)
	}
}

func (b *Bar) Finish() {
	if b.bar != nil {
		_ = b.bar.Finish()
	}
}
