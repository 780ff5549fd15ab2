package game

import "time"

// secondsToDuration converts a platform clock reading in seconds.
func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
