package dsp

// Map rescales value from [inMin, inMax] to [outMin, outMax]. With clamp set
// the input is first limited to [inMin, inMax], so the result saturates at the
// output edges. Without it the mapping extrapolates freely.
func Map(value, inMin, inMax, outMin, outMax float64, clamp bool) float64 {
	if inMin == inMax {
		return outMin
	}

	if clamp {
		lo, hi := inMin, inMax
		if lo > hi {
			lo, hi = hi, lo
		}

		switch {
		case value < lo:
			value = lo
		case value > hi:
			value = hi
		}
	}

	return outMin + (value-inMin)*(outMax-outMin)/(inMax-inMin)
}
