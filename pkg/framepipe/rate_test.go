package framepipe

import (
	"testing"
)

func TestParseRate(t *testing.T) {
	cases := []struct {
		in   string
		want Rate
	}{
		{"30", Rate{30, 1}},
		{"24", Rate{24, 1}},
		{"30000/1001", Rate{30000, 1001}},
		{" 25 ", Rate{25, 1}},
		{"29.97", Rate{2997, 100}},
	}

	for _, tc := range cases {
		got, err := ParseRate(tc.in)
		if err != nil {
			t.Errorf("ParseRate(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRate(%q): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestParseRateErrors(t *testing.T) {
	for _, in := range []string{"", "0", "-30", "30/0", "0/1", "abc", "30/"} {
		if _, err := ParseRate(in); err == nil {
			t.Errorf("ParseRate(%q): expected error", in)
		}
	}
}

func TestRateString(t *testing.T) {
	if got := RatePerSecond(30).String(); got != "30" {
		t.Errorf("expected 30, got %s", got)
	}
	if got := (Rate{30000, 1001}).String(); got != "30000/1001" {
		t.Errorf("expected 30000/1001, got %s", got)
	}
}

func TestRateFPS(t *testing.T) {
	fps := (Rate{30000, 1001}).FPS()
	if fps < 29.96 || fps > 29.98 {
		t.Errorf("expected about 29.97, got %f", fps)
	}
}
