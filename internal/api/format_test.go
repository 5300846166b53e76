package api

import "testing"

func TestFormatPoints(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999.9, "999"}, // sub-thousand values are floored
		{1000, "1.00K"},
		{15230, "15.23K"},
		{999999, "1000.00K"},
		{1000000, "1.00M"},
		{8250000, "8.25M"},
	}
	for _, c := range cases {
		if got := FormatPoints(c.in); got != c.want {
			t.Fatalf("FormatPoints(%v): expected %q, got %q", c.in, c.want, got)
		}
	}
}
