package colour

import "math"

// snapEpsilon absorbs float noise such as 254.99999999999997 before truncating.
const snapEpsilon = 1e-9

// Trunc converts x to an int by truncating toward zero. Values within
// snapEpsilon of an integer are snapped to it first so that results such as
// 100*2.55 land on 255 rather than 254. NaN truncates to 0.
func Trunc(x float64) int {
	if math.IsNaN(x) {
		return 0
	}
	if r := math.Round(x); math.Abs(x-r) < snapEpsilon {
		return int(r)
	}
	return int(x)
}

// ClampByte restricts v to the [0, 255] channel range.
func ClampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// clampPercent restricts v to [0, 100].
func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// normHue wraps h into [0, 360).
func normHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// wrapHue wraps an integer hue into [0, 360).
func wrapHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}
