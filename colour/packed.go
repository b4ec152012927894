package colour

// Packed integers place red in the low byte, green in bits 8-15 and blue in
// bits 16-23. The 32-bit form adds alpha in bits 24-31.
//
//	0xAABBGGRR

// RGBToInt24 packs clamped channels into a 24-bit value.
func RGBToInt24(r, g, b int) uint32 {
	return uint32(ClampByte(b))<<16 | uint32(ClampByte(g))<<8 | uint32(ClampByte(r))
}

// Int24ToRGB unpacks a 24-bit value. Bits above 23 are ignored.
func Int24ToRGB(n uint32) RGB {
	return RGB{
		int(n & 0xff),
		int(n >> 8 & 0xff),
		int(n >> 16 & 0xff),
	}
}

// RGBAToInt32 packs clamped channels and alpha into a 32-bit value.
func RGBAToInt32(r, g, b, a int) uint32 {
	return uint32(ClampByte(a))<<24 | RGBToInt24(r, g, b)
}

// Int32ToRGBA unpacks a 32-bit value into its channels and alpha.
func Int32ToRGBA(n uint32) (RGB, int) {
	return Int24ToRGB(n), int(n >> 24)
}
