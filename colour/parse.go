package colour

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrShortHex reports a hex colour with fewer than six digits after
	// shorthand expansion.
	ErrShortHex = errors.New("hex colour too short")
	// ErrInvalidHex reports a non-hexadecimal digit.
	ErrInvalidHex = errors.New("invalid hex digit")
	// ErrMalformedFunctional reports rgb(), hsl() or hsv() notation whose
	// arguments do not match the expected shape.
	ErrMalformedFunctional = errors.New("malformed functional notation")
	// ErrUnknownName reports a name that is neither in the table nor valid hex.
	ErrUnknownName = errors.New("unknown colour name")
	// ErrTooFewComponents reports explicit components with fewer than three
	// values.
	ErrTooFewComponents = errors.New("at least three colour components required")
)

// Input is one of the encodings a Value can be built from: Named, Hex,
// Functional, Components, Packed or an existing Value.
type Input interface {
	resolve() (Value, error)
}

// Named is a colour name such as "red". Unknown names are tried as hex.
type Named string

// Hex is a hexadecimal colour with or without a leading "#".
type Hex string

// Functional is CSS-style notation: rgb(), rgba(), hsl(), hsla(), hsv() or
// hsva().
type Functional string

// Components are explicit positional values: red, green, blue and an optional
// alpha (default 255). Values are clamped to [0, 255].
type Components []int

// Packed is a 24-bit packed colour, see RGBToInt24.
type Packed uint32

var (
	functionalPrefix = regexp.MustCompile(`^(rgb|hsl|hsv)a?\(`)
	functionalSyntax = regexp.MustCompile(
		`^(rgb|hsl|hsv)(a?)\(\s*([0-9]+)\s*,\s*([0-9]+)\s*(%?)\s*,\s*([0-9]+)\s*(%?)\s*(?:,\s*([0-9.]+)\s*)?\)$`)
)

// Classify picks the variant for a textual colour: a table name first, then
// functional notation, then hex.
func Classify(s string) Input {
	folded := fold(s)
	if _, ok := nameIndex[folded]; ok {
		return Named(folded)
	}
	if functionalPrefix.MatchString(folded) {
		return Functional(folded)
	}
	return Hex(folded)
}

// Parse resolves in to a Value or reports why it could not.
func Parse(in Input) (Value, error) {
	if in == nil {
		return Default, errors.New("nil colour input")
	}
	return in.resolve()
}

// ParseString classifies s and parses it.
func ParseString(s string) (Value, error) {
	return Parse(Classify(s))
}

// New resolves in, falling back to Default on any failure.
func New(in Input) Value {
	v, err := Parse(in)
	if err != nil {
		return Default
	}
	return v
}

// FromString is New(Classify(s)).
func FromString(s string) Value {
	return New(Classify(s))
}

func (n Named) resolve() (Value, error) {
	hex, ok := LookupName(string(n))
	if !ok {
		v, err := Hex(fold(string(n))).resolve()
		if err != nil {
			return Default, fmt.Errorf("%w: %q", ErrUnknownName, string(n))
		}
		return v, nil
	}
	return Hex(hex).resolve()
}

func (h Hex) resolve() (Value, error) {
	rgb, err := parseHex(string(h))
	if err != nil {
		return Default, err
	}
	return newValue(rgb, opaque), nil
}

func (p Packed) resolve() (Value, error) {
	return newValue(Int24ToRGB(uint32(p)), opaque), nil
}

func (c Components) resolve() (Value, error) {
	if len(c) < 3 {
		return Default, fmt.Errorf("%w: got %d", ErrTooFewComponents, len(c))
	}
	alpha := opaque
	if len(c) > 3 {
		alpha = c[3]
	}
	return newValue(RGB{c[0], c[1], c[2]}, alpha), nil
}

func (f Functional) resolve() (Value, error) {
	m := functionalSyntax.FindStringSubmatch(fold(string(f)))
	if m == nil {
		return Default, fmt.Errorf("%w: %q", ErrMalformedFunctional, string(f))
	}
	space, hasAlpha := m[1], m[2] != ""
	percent := m[5] != "" && m[7] != ""
	noPercent := m[5] == "" && m[7] == ""
	if (space == "rgb" && !noPercent) || (space != "rgb" && !percent) {
		return Default, fmt.Errorf("%w: %q", ErrMalformedFunctional, string(f))
	}

	var n [3]int
	for i, s := range []string{m[3], m[4], m[6]} {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Default, fmt.Errorf("%w: %q: %w", ErrMalformedFunctional, string(f), err)
		}
		n[i] = v
	}

	alpha := opaque
	if hasAlpha && m[8] != "" {
		a, err := strconv.ParseFloat(m[8], 64)
		if err != nil {
			return Default, fmt.Errorf("%w: %q: %w", ErrMalformedFunctional, string(f), err)
		}
		alpha = Trunc(a * 255)
	}

	var rgb RGB
	switch space {
	case "rgb":
		rgb = RGB(n)
	case "hsl":
		rgb = HSLToRGB(float64(n[0]), float64(clampPercent(n[1])), float64(clampPercent(n[2])))
	default:
		rgb = HSVToRGB(float64(n[0]), float64(clampPercent(n[1])), float64(clampPercent(n[2])))
	}
	return newValue(rgb, alpha), nil
}
