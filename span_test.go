package koyomi

import (
	"regexp"
	"testing"
	"time"
)

func spanDate(h, m, s, ms int) DateTime {
	return Of(time.Date(2016, 1, 26, h, m, s, ms*int(time.Millisecond), time.Local))
}

func TestFormatTimeSpan(t *testing.T) {
	cases := []struct {
		d1       DateTime
		d2       DateTime
		expected string
	}{
		{spanDate(10, 0, 0, 0), spanDate(11, 0, 0, 0), "01:00:00.000"},
		{spanDate(10, 0, 0, 0), spanDate(10, 30, 0, 0), "00:30:00.000"},
		{spanDate(10, 0, 0, 0), spanDate(10, 0, 20, 0), "00:00:20.000"},
		{spanDate(10, 0, 0, 0), spanDate(10, 0, 0, 250), "00:00:00.250"},
		{spanDate(10, 0, 0, 0), spanDate(15, 20, 10, 453), "05:20:10.453"},
		{spanDate(10, 0, 0, 0), spanDate(10, 0, 0, 0), "00:00:00.000"},
	}
	for _, c := range cases {
		if v := FormatTimeSpan(c.d1, c.d2); v != c.expected {
			t.Fatalf("got %v, expected %v", v, c.expected)
		}
		// symmetric
		if v := FormatTimeSpan(c.d2, c.d1); v != c.expected {
			t.Fatalf("reversed: got %v, expected %v", v, c.expected)
		}
	}
}

// Fields are subtracted independently, no borrowing between them.
func TestFormatTimeSpanNoCarry(t *testing.T) {
	if v := FormatTimeSpan(spanDate(10, 50, 0, 0), spanDate(11, 10, 0, 0)); v != "01:40:00.000" {
		t.Fatalf("v: %v", v)
	}
}

func TestFormatTimeSpanShape(t *testing.T) {
	pat := regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{3}$`)
	cases := [][2]DateTime{
		{spanDate(0, 0, 0, 0), spanDate(23, 59, 59, 999)},
		{spanDate(1, 2, 3, 4), spanDate(5, 6, 7, 8)},
		{Now(), Now().Add(-3 * time.Hour)},
	}
	for _, c := range cases {
		v := FormatTimeSpan(c[0], c[1])
		if !pat.MatchString(v) {
			t.Fatalf("malformed span: %v", v)
		}
	}
}
