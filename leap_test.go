package koyomi

import (
	"testing"
	"time"
)

func TestIsLeapYear(t *testing.T) {
	cases := []struct {
		year int
		leap bool
	}{
		{1900, false},
		{2000, true},
		{2001, false},
		{2012, true},
		{2015, false},
		{2016, true},
		{2100, false},
	}
	for _, c := range cases {
		d := Of(time.Date(c.year, 6, 1, 0, 0, 0, 0, time.Local))
		if v := IsLeapYear(d); v != c.leap {
			t.Fatalf("year %v: got %v, expected %v", c.year, v, c.leap)
		}
	}
}
