package colour

import "math"

// RGB holds red, green and blue channels, each in [0, 255].
type RGB [3]int

// HSL holds hue in [0, 360) degrees and saturation and lightness in [0, 100].
type HSL [3]int

// HSV holds hue in [0, 360) degrees and saturation and value in [0, 100].
type HSV [3]int

// HSLToRGB converts hue (degrees), saturation and lightness (percent) to RGB.
//
// Hue is wrapped onto the colour wheel, so 360 and -120 are valid inputs.
// Saturation and lightness are expected in [0, 100]; values outside that range
// produce channels outside [0, 255] and must be clamped by the caller.
func HSLToRGB(h, s, l float64) RGB {
	h = normHue(h) / 360
	s /= 100
	l /= 100

	if s == 0 {
		c := channel(l)
		return RGB{c, c, c}
	}

	var m float64
	if l < 0.5 {
		m = l * (1 + s)
	} else {
		m = l + s - l*s
	}
	n := 2*l - m

	return RGB{
		channel(hueToChannel(m, n, h+1.0/3)),
		channel(hueToChannel(m, n, h)),
		channel(hueToChannel(m, n, h-1.0/3)),
	}
}

// hueToChannel evaluates one RGB channel at hue offset t (in turns) for the
// chroma bounds k (upper) and n (lower).
func hueToChannel(k, n, t float64) float64 {
	t = math.Mod(t+1, 1)
	switch {
	case t*6 < 1:
		return n + (k-n)*6*t
	case t*2 < 1:
		return k
	case t*3 < 2:
		return n + (k-n)*(2.0/3-t)*6
	default:
		return n
	}
}

// HSVToRGB converts hue (degrees), saturation and value (percent) to RGB.
func HSVToRGB(h, s, v float64) RGB {
	h = normHue(h) / 60
	s /= 100
	v /= 100

	if s == 0 {
		c := channel(v)
		return RGB{c, c, c}
	}

	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return RGB{channel(r), channel(g), channel(b)}
}

// RGBToHSL converts RGB channels to HSL, truncating every component.
func RGBToHSL(r, g, b int) HSL {
	h, s, l := RGBToHSLFloat(r, g, b)
	return HSL{wrapHue(Trunc(h)), Trunc(s), Trunc(l)}
}

// RGBToHSLFloat is RGBToHSL without truncation. Achromatic input reports hue
// and saturation 0.
func RGBToHSLFloat(r, g, b int) (h, s, l float64) {
	rf, gf, bf := unit(r), unit(g), unit(b)
	hi := max(rf, gf, bf)
	lo := min(rf, gf, bf)
	d := hi - lo
	l = (hi + lo) / 2

	if d == 0 {
		return 0, 0, l * 100
	}
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}
	return hue(rf, gf, bf, hi, d), s * 100, l * 100
}

// RGBToHSV converts RGB channels to HSV, truncating every component.
func RGBToHSV(r, g, b int) HSV {
	h, s, v := RGBToHSVFloat(r, g, b)
	return HSV{wrapHue(Trunc(h)), Trunc(s), Trunc(v)}
}

// RGBToHSVFloat is RGBToHSV without truncation.
func RGBToHSVFloat(r, g, b int) (h, s, v float64) {
	rf, gf, bf := unit(r), unit(g), unit(b)
	hi := max(rf, gf, bf)
	lo := min(rf, gf, bf)
	d := hi - lo

	if d == 0 {
		return 0, 0, hi * 100
	}
	return hue(rf, gf, bf, hi, d), d / hi * 100, hi * 100
}

// hue returns the hue in degrees [0, 360) of a chromatic colour whose largest
// channel is hi and whose chroma is d.
func hue(r, g, b, hi, d float64) float64 {
	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return normHue(h * 60)
}

func unit(c int) float64 {
	return float64(c) / 255
}

func channel(u float64) int {
	return Trunc(u * 255)
}
