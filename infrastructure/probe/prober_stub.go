//go:build !probe

package probe

import "mediascribe/domain/extraction"

// Prober is a stub when OpenCV is not available
type Prober struct{}

// NewProber creates a stub prober (requires building with -tags=probe)
func NewProber() *Prober {
	return &Prober{}
}

// Probe always reports the prober as unavailable
func (p *Prober) Probe(path string) (*extraction.VideoInfo, error) {
	return nil, ErrUnavailable
}

// Ensure Prober implements extraction.VideoProber
var _ extraction.VideoProber = (*Prober)(nil)
