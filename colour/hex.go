package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// HexToRGB parses a hexadecimal colour such as "#0000ff", "0000ff" or "00f".
// A three digit shorthand is expanded by duplicating each digit. Digits
// beyond the sixth are ignored. ok is false when fewer than six digits remain
// or a digit is not hexadecimal; callers keep their previous colour then.
func HexToRGB(hex string) (rgb RGB, ok bool) {
	rgb, err := parseHex(hex)
	return rgb, err == nil
}

func parseHex(hex string) (RGB, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}
	if len(digits) < 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrShortHex, hex)
	}

	var rgb RGB
	for i := range rgb {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
		}
		rgb[i] = int(v)
	}
	return rgb, nil
}

// RGBToHex renders the channels as "#rrggbb" in lowercase. Channels are
// clamped to [0, 255] first.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", ClampByte(r), ClampByte(g), ClampByte(b))
}
