package colour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantHex string
		wantOK  bool
	}{
		{"lowercase", "red", "ff0000", true},
		{"mixed case", "AliceBlue", "f0f8ff", true},
		{"surrounding space", "  navy ", "000080", true},
		{"legacy name", "feldspar", "d19275", true},
		{"indianred", "indianred", "cd5c5c", true},
		{"unknown", "notacolour", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hex, ok := LookupName(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantHex, hex)
		})
	}
}

func TestNameOfPrefersFirstEntry(t *testing.T) {
	name, ok := NameOf("#00FFFF")
	require.True(t, ok)
	assert.Equal(t, "aqua", name)

	name, ok = NameOf("ff00ff")
	require.True(t, ok)
	assert.Equal(t, "fuchsia", name)

	_, ok = NameOf("#123456")
	assert.False(t, ok)
}

func TestNamedColourTable(t *testing.T) {
	names := Names()
	require.Len(t, names, 143)
	assert.Equal(t, "aliceblue", names[0])
	assert.Equal(t, "yellowgreen", names[len(names)-1])

	seen := make(map[string]bool, len(names))
	for _, c := range NamedColours() {
		assert.False(t, seen[c.Name], "duplicate name %q", c.Name)
		seen[c.Name] = true

		rgb, ok := HexToRGB(c.Hex)
		require.True(t, ok, c.Name)

		first, ok := NameOf(c.Hex)
		require.True(t, ok, c.Name)
		firstHex, _ := LookupName(first)
		assert.Equal(t, c.Hex, firstHex)
		assert.Equal(t, RGBToHex(rgb[0], rgb[1], rgb[2]), "#"+c.Hex)
	}
}

func TestNamedColoursIsACopy(t *testing.T) {
	table := NamedColours()
	table[0].Hex = "000000"

	hex, ok := LookupName("aliceblue")
	require.True(t, ok)
	assert.Equal(t, "f0f8ff", hex)
	assert.Equal(t, "f0f8ff", NamedColours()[0].Hex)
}
