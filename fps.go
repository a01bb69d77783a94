package sway

import "time"

// FPS returns the per-frame delta in milliseconds for an animation
// loop running at n frames per second, suitable for passing to Update.
func FPS(n int) float64 {
	return 1000 / float64(n)
}

// Delta converts an elapsed duration to the millisecond delta Update
// expects. Sub-millisecond precision is preserved.
func Delta(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
