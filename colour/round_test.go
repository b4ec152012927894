package colour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrunc(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int
	}{
		{"zero", 0, 0},
		{"fraction truncates", 2.7, 2},
		{"negative truncates toward zero", -2.7, -2},
		{"float noise snaps up", 254.99999999999997, 255},
		{"float noise above an integer", 3.0000000000000004, 3},
		{"NaN", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Trunc(tt.in))
		})
	}
}

func TestClampByte(t *testing.T) {
	assert.Equal(t, 0, ClampByte(-1))
	assert.Equal(t, 0, ClampByte(0))
	assert.Equal(t, 128, ClampByte(128))
	assert.Equal(t, 255, ClampByte(255))
	assert.Equal(t, 255, ClampByte(256))
}

func TestNormHue(t *testing.T) {
	assert.Equal(t, 0.0, normHue(360))
	assert.Equal(t, 240.0, normHue(-120))
	assert.Equal(t, 90.0, normHue(450))
	assert.Equal(t, 359, wrapHue(-1))
	assert.Equal(t, 0, wrapHue(360))
}
