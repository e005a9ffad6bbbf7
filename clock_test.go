package koyomi

import (
	"math"
	"testing"
	"time"
)

func clockDate(hour, min int) DateTime {
	return Of(time.Date(2016, 1, 26, hour, min, 0, 0, time.UTC))
}

func TestClockHandAngle(t *testing.T) {
	cases := []struct {
		hour     int
		min      int
		expected float64
	}{
		{0, 0, 0},
		{3, 0, math.Pi / 2},
		{6, 0, math.Pi},
		{9, 0, math.Pi / 2},
		{12, 0, 0},
		{18, 0, math.Pi},
		{21, 0, math.Pi / 2},
		{3, 30, math.Pi * 75 / 180},
		{12, 30, math.Pi * 165 / 180},
	}
	for _, c := range cases {
		v := ClockHandAngle(clockDate(c.hour, c.min))
		if math.Abs(v-c.expected) > 1e-9 {
			t.Fatalf("%02d:%02d: got %v, expected %v", c.hour, c.min, v, c.expected)
		}
	}
}

// Seconds play no part in the angle.
func TestClockHandAngleIgnoresSeconds(t *testing.T) {
	a := ClockHandAngle(Of(time.Date(2016, 1, 26, 3, 0, 0, 0, time.UTC)))
	b := ClockHandAngle(Of(time.Date(2016, 1, 26, 3, 0, 59, 999*int(time.Millisecond), time.UTC)))
	if a != b {
		t.Fatalf("a: %v, b: %v", a, b)
	}
}

func TestClockHandAngleRange(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			v := ClockHandAngle(clockDate(h, m))
			if v < 0 || v > math.Pi {
				t.Fatalf("%02d:%02d: angle %v out of [0, pi]", h, m, v)
			}
		}
	}
}
