package renderer

import "time"

// FrameStats contains statistics about one rendered frame
type FrameStats struct {
	Pixels   int           // Pixels written
	Hits     int           // View rays that hit geometry
	Workers  int           // Goroutines that rendered the frame
	Duration time.Duration // Wall time from dispatch to barrier
}

// HitRatio returns the fraction of pixels whose view ray hit geometry
func (s FrameStats) HitRatio() float64 {
	if s.Pixels == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Pixels)
}

// PixelsPerSecond returns render throughput
func (s FrameStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Pixels) / s.Duration.Seconds()
}
