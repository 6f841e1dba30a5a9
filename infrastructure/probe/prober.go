//go:build probe

package probe

import (
	"fmt"
	"time"

	"mediascribe/domain/extraction"

	"gocv.io/x/gocv"
)

// Prober implements extraction.VideoProber using OpenCV
type Prober struct{}

// NewProber creates a new video prober
func NewProber() *Prober {
	return &Prober{}
}

// Probe opens the video and reads its frame count and frame rate
func (p *Prober) Probe(path string) (*extraction.VideoInfo, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open video: %w", err)
	}
	defer capture.Close()

	fps := capture.Get(gocv.VideoCaptureFPS)
	frames := int(capture.Get(gocv.VideoCaptureFrameCount))

	info := &extraction.VideoInfo{
		FrameCount: frames,
		FPS:        fps,
	}
	if fps > 0 {
		info.Duration = time.Duration(float64(frames) / fps * float64(time.Second))
	}

	return info, nil
}

// Ensure Prober implements extraction.VideoProber
var _ extraction.VideoProber = (*Prober)(nil)
