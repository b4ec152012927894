package colour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name   string
		hex    string
		want   RGB
		wantOK bool
	}{
		{"shorthand", "00f", RGB{0, 0, 255}, true},
		{"shorthand with hash", "#abc", RGB{0xaa, 0xbb, 0xcc}, true},
		{"full", "0000ff", RGB{0, 0, 255}, true},
		{"full with hash", "#ff8000", RGB{255, 128, 0}, true},
		{"uppercase", "#FF00FF", RGB{255, 0, 255}, true},
		{"extra digits ignored", "0000ff80", RGB{0, 0, 255}, true},
		{"empty", "", RGB{}, false},
		{"hash only", "#", RGB{}, false},
		{"too short", "#12", RGB{}, false},
		{"five digits", "12345", RGB{}, false},
		{"not hex", "gg0000", RGB{}, false},
		{"sign is not a digit", "+f0000", RGB{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HexToRGB(tt.hex)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexErrors(t *testing.T) {
	_, err := parseHex("#12")
	require.ErrorIs(t, err, ErrShortHex)

	_, err = parseHex("zz0000")
	require.ErrorIs(t, err, ErrInvalidHex)
}

func TestRGBToHex(t *testing.T) {
	assert.Equal(t, "#0000ff", RGBToHex(0, 0, 255))
	assert.Equal(t, "#0a0b0c", RGBToHex(10, 11, 12))
	assert.Equal(t, "#ffffff", RGBToHex(255, 255, 255))
	assert.Equal(t, "#ff0000", RGBToHex(300, -4, 0))
}

func TestHexRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 5 {
		for g := 0; g <= 255; g += 5 {
			for b := 0; b <= 255; b += 5 {
				got, ok := HexToRGB(RGBToHex(r, g, b))
				if !ok || got != (RGB{r, g, b}) {
					t.Fatalf("rgb(%d,%d,%d) -> %q -> %v, %v", r, g, b, RGBToHex(r, g, b), got, ok)
				}
			}
		}
	}
}
