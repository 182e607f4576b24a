package scale

import (
	"math"

	moremath "github.com/aclements/go-moremath/scale"
)

// Control points for the tick heuristic. Odd tick counts are deliberate:
// even counts were seen to drop the topmost tick label.
var (
	tickHeights = []float64{20, 40, 1000}
	tickCounts  = []float64{0, 3, 11}
)

// MaxTicks is the largest count TickScale can return.
const MaxTicks = 11

// TickScale returns the number of ticks an axis of the given pixel height
// should carry. Short axes get fewer ticks so labels don't crowd.
func TickScale(height float64) int {
	if math.IsNaN(height) {
		return 0
	}
	return int(math.Ceil(piecewise(tickHeights, tickCounts, height)))
}

// Thresholds on the normalized step that pick 10, 5 or 2 times a power of ten.
var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickIncrement returns the round step for about count ticks over
// [start, stop]. A step below one is returned as its negated inverse so
// bounds can be rounded without fractional error, e.g. -5 for 0.2.
func tickIncrement(start, stop float64, count int) float64 {
	step := (stop - start) / float64(count)
	power := math.Floor(math.Log10(step))
	scaled := step / math.Pow(10, power)

	factor := 1.0
	switch {
	case scaled >= e10:
		factor = 10
	case scaled >= e5:
		factor = 5
	case scaled >= e2:
		factor = 2
	}

	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

// piecewise interpolates linearly between control points and clamps
// outside of them.
func piecewise(xs, ys []float64, x float64) float64 {
	last := len(xs) - 1
	switch {
	case x <= xs[0]:
		return ys[0]
	case x >= xs[last]:
		return ys[last]
	}

	i := 1
	for i < last && x > xs[i] {
		i++
	}
	seg := moremath.Linear{Min: xs[i-1], Max: xs[i], Clamp: true}
	return ys[i-1] + seg.Map(x)*(ys[i]-ys[i-1])
}
