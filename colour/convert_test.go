package colour

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

// channelSteps samples [0, 255] including both ends.
var channelSteps = func() []int {
	var steps []int
	for c := 0; c <= 255; c += 15 {
		steps = append(steps, c)
	}
	return append(steps, 1, 128, 254)
}()

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    HSL
	}{
		{"blue", 0, 0, 255, HSL{240, 100, 50}},
		{"red", 255, 0, 0, HSL{0, 100, 50}},
		{"lime", 0, 255, 0, HSL{120, 100, 50}},
		{"magenta", 255, 0, 255, HSL{300, 100, 50}},
		{"orange", 255, 128, 0, HSL{30, 100, 50}},
		{"white", 255, 255, 255, HSL{0, 0, 100}},
		{"black", 0, 0, 0, HSL{0, 0, 0}},
		{"grey", 128, 128, 128, HSL{0, 0, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBToHSL(tt.r, tt.g, tt.b))
		})
	}
}

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    HSV
	}{
		{"blue", 0, 0, 255, HSV{240, 100, 100}},
		{"red", 255, 0, 0, HSV{0, 100, 100}},
		{"magenta", 255, 0, 255, HSV{300, 100, 100}},
		{"orange", 255, 128, 0, HSV{30, 100, 100}},
		{"white", 255, 255, 255, HSV{0, 0, 100}},
		{"black", 0, 0, 0, HSV{0, 0, 0}},
		{"grey", 128, 128, 128, HSV{0, 0, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBToHSV(tt.r, tt.g, tt.b))
		})
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGB
	}{
		{"red", 0, 100, 50, RGB{255, 0, 0}},
		{"lime", 120, 100, 50, RGB{0, 255, 0}},
		{"blue", 240, 100, 50, RGB{0, 0, 255}},
		{"orange", 30, 100, 50, RGB{255, 127, 0}},
		{"hue 360 wraps to red", 360, 100, 50, RGB{255, 0, 0}},
		{"negative hue wraps", -120, 100, 50, RGB{0, 0, 255}},
		{"achromatic grey", 0, 0, 50, RGB{127, 127, 127}},
		{"achromatic ignores hue", 200, 0, 100, RGB{255, 255, 255}},
		{"black", 0, 100, 0, RGB{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HSLToRGB(tt.h, tt.s, tt.l))
		})
	}
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    RGB
	}{
		{"red", 0, 100, 100, RGB{255, 0, 0}},
		{"lime", 120, 100, 100, RGB{0, 255, 0}},
		{"blue", 240, 100, 100, RGB{0, 0, 255}},
		{"orange", 30, 100, 100, RGB{255, 127, 0}},
		{"magenta", 300, 100, 100, RGB{255, 0, 255}},
		{"achromatic grey", 0, 0, 50, RGB{127, 127, 127}},
		{"black", 90, 100, 0, RGB{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HSVToRGB(tt.h, tt.s, tt.v))
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for _, r := range channelSteps {
		for _, g := range channelSteps {
			for _, b := range channelSteps {
				h, s, l := RGBToHSLFloat(r, g, b)
				got := HSLToRGB(h, s, l)
				if !withinOne(got, RGB{r, g, b}) {
					t.Fatalf("rgb(%d,%d,%d) -> hsl(%v,%v,%v) -> %v", r, g, b, h, s, l, got)
				}
			}
		}
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for _, r := range channelSteps {
		for _, g := range channelSteps {
			for _, b := range channelSteps {
				h, s, v := RGBToHSVFloat(r, g, b)
				got := HSVToRGB(h, s, v)
				if !withinOne(got, RGB{r, g, b}) {
					t.Fatalf("rgb(%d,%d,%d) -> hsv(%v,%v,%v) -> %v", r, g, b, h, s, v, got)
				}
			}
		}
	}
}

func TestHSLToRGBToHSL(t *testing.T) {
	tests := []HSL{
		{0, 100, 50},
		{30, 100, 50},
		{60, 100, 50},
		{120, 100, 50},
		{180, 100, 50},
		{240, 100, 50},
		{300, 100, 50},
		{0, 0, 100},
		{0, 0, 0},
	}

	for _, want := range tests {
		rgb := HSLToRGB(float64(want[0]), float64(want[1]), float64(want[2]))
		got := RGBToHSL(rgb[0], rgb[1], rgb[2])
		for i := range want {
			assert.InDelta(t, want[i], got[i], 1, "hsl%v -> %v -> hsl%v", want, rgb, got)
		}
	}
}

func TestAchromaticHueIsZero(t *testing.T) {
	for _, c := range channelSteps {
		assert.Equal(t, 0, RGBToHSL(c, c, c)[0])
		assert.Equal(t, 0, RGBToHSV(c, c, c)[0])
	}
}

func TestAgainstColorful(t *testing.T) {
	for _, r := range channelSteps {
		for _, g := range channelSteps {
			for _, b := range channelSteps {
				c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

				wantH, wantS, wantL := c.Hsl()
				h, s, l := RGBToHSLFloat(r, g, b)
				assert.InDelta(t, wantS*100, s, 1e-6)
				assert.InDelta(t, wantL*100, l, 1e-6)
				assert.InDelta(t, 0, hueDistance(wantH, h), 1e-6)

				wantH, wantS, wantV := c.Hsv()
				h, s, v := RGBToHSVFloat(r, g, b)
				assert.InDelta(t, wantS*100, s, 1e-6)
				assert.InDelta(t, wantV*100, v, 1e-6)
				assert.InDelta(t, 0, hueDistance(wantH, h), 1e-6)
			}
		}
	}
}

func withinOne(a, b RGB) bool {
	for i := range a {
		if d := a[i] - b[i]; d < -1 || d > 1 {
			return false
		}
	}
	return true
}

func hueDistance(a, b float64) float64 {
	d := math.Abs(math.Mod(a, 360) - math.Mod(b, 360))
	if d > 180 {
		d = 360 - d
	}
	return d
}
