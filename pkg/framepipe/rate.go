package framepipe

import (
	"fmt"
	"strconv"
	"strings"
)

// Rate is a frame rate expressed as a positive rational number, so
// broadcast rates like 30000/1001 survive without rounding.
type Rate struct {
	Num int
	Den int
}

// RatePerSecond returns a whole frames-per-second rate.
func RatePerSecond(fps int) Rate {
	return Rate{Num: fps, Den: 1}
}

// ParseRate parses "30", "29.97" or "30000/1001" into a Rate.
func ParseRate(s string) (Rate, error) {
	s = strings.TrimSpace(s)

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(num))
		if err != nil {
			return Rate{}, fmt.Errorf("framepipe: invalid frame rate %q: %w", s, err)
		}
		d, err := strconv.Atoi(strings.TrimSpace(den))
		if err != nil {
			return Rate{}, fmt.Errorf("framepipe: invalid frame rate %q: %w", s, err)
		}
		r := Rate{Num: n, Den: d}
		if !r.Valid() {
			return Rate{}, fmt.Errorf("framepipe: frame rate %q is not positive", s)
		}
		return r, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		r := RatePerSecond(n)
		if !r.Valid() {
			return Rate{}, fmt.Errorf("framepipe: frame rate %q is not positive", s)
		}
		return r, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Rate{}, fmt.Errorf("framepipe: invalid frame rate %q", s)
	}
	// Fixed denominator keeps e.g. 29.97 exact as 2997/100.
	r := Rate{Num: int(f*100 + 0.5), Den: 100}
	if !r.Valid() {
		return Rate{}, fmt.Errorf("framepipe: frame rate %q is not positive", s)
	}
	return r, nil
}

// Valid returns true if the rate is positive.
func (r Rate) Valid() bool {
	return r.Num > 0 && r.Den > 0
}

// FPS returns the rate as frames per second.
func (r Rate) FPS() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

// String formats the rate the way encoder command lines expect it:
// "30" for whole rates, "30000/1001" otherwise.
func (r Rate) String() string {
	if r.Den == 1 {
		return strconv.Itoa(r.Num)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}
