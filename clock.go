package koyomi

import (
	"math"
)

// ClockHandAngle returns the angle in radians between the hour and minute hands
// of a 12-hour analog clock showing d's UTC hour and minute. Seconds are ignored.
//
// The hour hand moves 0.5 degrees per minute, the minute hand 6. When the raw
// angle exceeds pi the result is reduced by pi rather than reflected to
// 2*pi-raw; callers wanting the textbook minor angle should take
// min(raw, 2*pi-raw) themselves. The result is always within [0, pi].
func ClockHandAngle(d DateTime) float64 {
	t := d.UTC()
	h := float64(t.Hour() % 12)
	m := float64(t.Minute())

	hourDeg := 30*h + 0.5*m
	minuteDeg := 6 * m

	rad := math.Abs(hourDeg-minuteDeg) * math.Pi / 180
	if rad > math.Pi {
		rad -= math.Pi
	}
	return rad
}
