// Package colour parses colours written as names, hex strings, CSS-style
// functional notation, explicit components or packed integers, and converts
// between RGB, HSL, HSV, hex and packed integer forms.
//
// Every input resolves to a Value holding RGB channels and alpha in
// [0, 255]:
//
//	blue := colour.FromString("hsl(240,100%,50%)")
//	blue.Hex()     // "#0000ff"
//	blue.CSSHSV()  // "hsv(240,100%,100%)"
//	blue.Int24()   // 16711680
//
// Conversions truncate toward zero rather than round. The package has no
// mutable state; all functions are safe for concurrent use.
package colour
