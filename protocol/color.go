package protocol

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ftsell/colourizr/colour"
)

const (
	FORMAT_HEX   = "hex"
	FORMAT_RGB   = "rgb"
	FORMAT_RGBA  = "rgba"
	FORMAT_HSL   = "hsl"
	FORMAT_HSLA  = "hsla"
	FORMAT_HSV   = "hsv"
	FORMAT_HSVA  = "hsva"
	FORMAT_INT24 = "int24"
	FORMAT_INT32 = "int32"
	FORMAT_NAME  = "name"
)

var renderers = map[string]func(colour.Value) (string, error){
	FORMAT_HEX:   plain(colour.Value.Hex),
	FORMAT_RGB:   plain(colour.Value.CSSRGB),
	FORMAT_RGBA:  plain(colour.Value.CSSRGBA),
	FORMAT_HSL:   plain(colour.Value.CSSHSL),
	FORMAT_HSLA:  plain(colour.Value.CSSHSLA),
	FORMAT_HSV:   plain(colour.Value.CSSHSV),
	FORMAT_HSVA:  plain(colour.Value.CSSHSVA),
	FORMAT_INT24: renderInt24,
	FORMAT_INT32: renderInt32,
	FORMAT_NAME:  renderName,
}

func plain(f func(colour.Value) string) func(colour.Value) (string, error) {
	return func(c colour.Value) (string, error) { return f(c), nil }
}

func renderInt24(c colour.Value) (string, error) {
	return strconv.FormatUint(uint64(c.Int24()), 10), nil
}

func renderInt32(c colour.Value) (string, error) {
	return strconv.FormatUint(uint64(c.Int32()), 10), nil
}

func renderName(c colour.Value) (string, error) {
	if name, ok := c.Name(); ok {
		return name, nil
	}
	return "", fmt.Errorf("no named colour for %v", c.Hex())
}

// RenderColor renders c in the named output format.
func RenderColor(c colour.Value, format string) (string, error) {
	render, ok := renderers[strings.ToLower(format)]
	if !ok {
		return "", errors.New("unknown format " + format)
	}
	return render(c)
}

// ColorFromString parses any textual colour the colour package understands,
// plus packed values written as "int24:$n" or "int32:$n" in decimal.
func ColorFromString(s string) (colour.Value, error) {
	s = strings.TrimSpace(s)
	if format, digits, ok := strings.Cut(s, ":"); ok {
		format = strings.ToLower(format)
		if format == FORMAT_INT24 || format == FORMAT_INT32 {
			n, err := strconv.ParseUint(digits, 10, 32)
			if err != nil {
				return colour.Default, fmt.Errorf("invalid %v value %q: %w", format, digits, err)
			}
			if format == FORMAT_INT24 {
				return colour.Parse(colour.Packed(n))
			}
			rgb, alpha := colour.Int32ToRGBA(uint32(n))
			return colour.Parse(colour.Components{rgb[0], rgb[1], rgb[2], alpha})
		}
	}
	return colour.ParseString(s)
}
