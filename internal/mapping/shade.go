package mapping

// Denominator is the divisor used to turn a trail position into a brightness
// ratio. An active trail excludes its head from the body, so it uses n-2; a
// fading trail uses n-1. The result is never below 1.
func Denominator(n int, active bool) int {
	d := n - 1
	if active {
		d = n - 2
	}
	if d < 1 {
		return 1
	}
	return d
}

// ShadeIndex maps trail position pos (0 = oldest) onto a ramp of rampSize
// shades as floor(pos/denom * (rampSize-1)), clamped to the ramp.
func ShadeIndex(pos, denom, rampSize int) int {
	if rampSize <= 0 {
		return 0
	}
	if denom < 1 {
		denom = 1
	}
	ratio := float64(pos) / float64(denom)
	idx := int(ratio * float64(rampSize-1))
	if idx < 0 {
		idx = 0
	}
	if idx > rampSize-1 {
		idx = rampSize - 1
	}
	return idx
}
