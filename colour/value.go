package colour

import (
	"fmt"
	"image/color"
	"strconv"
)

const opaque = 255

// Value is a colour in canonical form: RGB channels and alpha, each in
// [0, 255]. A Value is never modified after construction and is itself an
// Input, so passing one to Parse or New returns it unchanged.
type Value struct {
	rgb   RGB
	alpha int
}

// Default is the colour used when an input cannot be parsed: opaque white.
var Default = Value{rgb: RGB{255, 255, 255}, alpha: opaque}

// Model converts any color.Color to a Value.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// Verify at compile time that Value implements color.Color.
var _ color.Color = Value{}

func newValue(rgb RGB, alpha int) Value {
	for i := range rgb {
		rgb[i] = ClampByte(rgb[i])
	}
	return Value{rgb: rgb, alpha: ClampByte(alpha)}
}

// FromColor converts a color.Color, undoing alpha premultiplication.
func FromColor(c color.Color) Value {
	if v, ok := c.(Value); ok {
		return v
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return newValue(RGB{int(n.R), int(n.G), int(n.B)}, int(n.A))
}

func (v Value) resolve() (Value, error) {
	return v, nil
}

// RGB returns the red, green and blue channels.
func (v Value) RGB() RGB {
	return v.rgb
}

// Alpha returns the opacity, 0 transparent to 255 opaque.
func (v Value) Alpha() int {
	return v.alpha
}

// HSL returns the colour in HSL.
func (v Value) HSL() HSL {
	return RGBToHSL(v.rgb[0], v.rgb[1], v.rgb[2])
}

// HSV returns the colour in HSV.
func (v Value) HSV() HSV {
	return RGBToHSV(v.rgb[0], v.rgb[1], v.rgb[2])
}

// Equal reports whether both values hold the same channels and alpha.
func (v Value) Equal(o Value) bool {
	return v == o
}

// RGBA implements color.Color.
func (v Value) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{
		R: uint8(v.rgb[0]),
		G: uint8(v.rgb[1]),
		B: uint8(v.rgb[2]),
		A: uint8(v.alpha),
	}.RGBA()
}

// Hex renders "#rrggbb".
func (v Value) Hex() string {
	return RGBToHex(v.rgb[0], v.rgb[1], v.rgb[2])
}

// CSSRGB renders "rgb(r,g,b)".
func (v Value) CSSRGB() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", v.rgb[0], v.rgb[1], v.rgb[2])
}

// CSSRGBA renders "rgb(r,g,b,a)" with alpha as a fraction of 255.
func (v Value) CSSRGBA() string {
	return fmt.Sprintf("rgb(%d,%d,%d,%s)", v.rgb[0], v.rgb[1], v.rgb[2], v.alphaFraction())
}

// CSSHSL renders "hsl(h,s%,l%)".
func (v Value) CSSHSL() string {
	hsl := v.HSL()
	return fmt.Sprintf("hsl(%d,%d%%,%d%%)", hsl[0], hsl[1], hsl[2])
}

// CSSHSLA renders "hsl(h,s%,l%,a)".
func (v Value) CSSHSLA() string {
	hsl := v.HSL()
	return fmt.Sprintf("hsl(%d,%d%%,%d%%,%s)", hsl[0], hsl[1], hsl[2], v.alphaFraction())
}

// CSSHSV renders "hsv(h,s%,v%)".
func (v Value) CSSHSV() string {
	hsv := v.HSV()
	return fmt.Sprintf("hsv(%d,%d%%,%d%%)", hsv[0], hsv[1], hsv[2])
}

// CSSHSVA renders "hsva(h,s%,v%,a)".
func (v Value) CSSHSVA() string {
	hsv := v.HSV()
	return fmt.Sprintf("hsva(%d,%d%%,%d%%,%s)", hsv[0], hsv[1], hsv[2], v.alphaFraction())
}

// Int24 packs the channels, see RGBToInt24.
func (v Value) Int24() uint32 {
	return RGBToInt24(v.rgb[0], v.rgb[1], v.rgb[2])
}

// Int32 packs the channels with alpha in the high byte.
func (v Value) Int32() uint32 {
	return RGBAToInt32(v.rgb[0], v.rgb[1], v.rgb[2], v.alpha)
}

// Name returns the table name for the exact hex value, if there is one.
func (v Value) Name() (string, bool) {
	return NameOf(v.Hex())
}

// String renders the hex form.
func (v Value) String() string {
	return v.Hex()
}

func (v Value) alphaFraction() string {
	return strconv.FormatFloat(float64(v.alpha)/255, 'f', -1, 64)
}
