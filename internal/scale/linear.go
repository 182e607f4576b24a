package scale

import (
	"math"

	moremath "github.com/aclements/go-moremath/scale"
)

// Linear maps a continuous value domain onto a pixel range.
// The range may be inverted (r0 > r1), which is how vertical axes
// put larger values nearer the top of the surface.
type Linear struct {
	domain moremath.Linear
	r0, r1 float64
}

// NewLinear builds a linear scale from domain [d0, d1] to range [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) *Linear {
	return &Linear{
		domain: moremath.Linear{Min: d0, Max: d1},
		r0:     r0,
		r1:     r1,
	}
}

// Domain returns the current input bounds.
func (s *Linear) Domain() (float64, float64) {
	return s.domain.Min, s.domain.Max
}

// Range returns the output bounds in the order they were given.
func (s *Linear) Range() (float64, float64) {
	return s.r0, s.r1
}

// Map returns the pixel position of v.
func (s *Linear) Map(v float64) float64 {
	if s.domain.Min == s.domain.Max {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + s.domain.Map(v)*(s.r1-s.r0)
}

// Invert returns the value rendered at pixel position px.
func (s *Linear) Invert(px float64) float64 {
	if s.r0 == s.r1 {
		return s.domain.Min
	}
	return s.domain.Unmap((px - s.r0) / (s.r1 - s.r0))
}

// Nice expands the domain outward so both ends land on multiples of a
// round tick step for count ticks. A count below one, an empty domain or
// a non-finite one is left untouched.
func (s *Linear) Nice(count int) *Linear {
	lo, hi := s.domain.Min, s.domain.Max
	if count < 1 || lo == hi || !finite(lo) || !finite(hi) {
		return s
	}
	reversed := lo > hi
	if reversed {
		lo, hi = hi, lo
	}
	lo, hi = niceBounds(lo, hi, count)
	if reversed {
		lo, hi = hi, lo
	}
	s.domain.Min, s.domain.Max = lo, hi
	return s
}

// maxNiceIterations bounds the rounding passes in niceBounds.
const maxNiceIterations = 10

// niceBounds rounds [lo, hi] outward to the tick step until the step stops
// changing. Small counts can keep growing the step; the first rounding is
// used then.
func niceBounds(lo, hi float64, count int) (float64, float64) {
	start, stop := lo, hi
	var first [2]float64
	var prev float64
	for i := 0; i < maxNiceIterations; i++ {
		step := tickIncrement(start, stop, count)
		if step == prev {
			return start, stop
		}
		switch {
		case step > 0:
			start = math.Floor(start/step) * step
			stop = math.Ceil(stop/step) * step
		case step < 0:
			start = math.Ceil(start*step) / step
			stop = math.Floor(stop*step) / step
		default:
			return lo, hi
		}
		if !finite(start) || !finite(stop) {
			return lo, hi
		}
		if i == 0 {
			first = [2]float64{start, stop}
		}
		prev = step
	}
	return first[0], first[1]
}

// Ticks returns at most count round values inside the domain in
// ascending order.
func (s *Linear) Ticks(count int) []float64 {
	if count < 1 {
		return nil
	}
	major, _ := s.domain.Ticks(moremath.TickOptions{Max: count})
	return major
}

// Finite reports whether the scale maps its domain ends and midpoint
// onto finite pixel positions.
func (s *Linear) Finite() bool {
	lo, hi := s.Domain()
	for _, v := range []float64{lo, (lo + hi) / 2, hi} {
		px := s.Map(v)
		if math.IsNaN(px) || math.IsInf(px, 0) {
			return false
		}
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
