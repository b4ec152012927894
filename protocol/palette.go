package protocol

import (
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/ftsell/colourizr/colour"
)

const (
	// MaxPaletteSize is bounded by the two byte slot count in snapshots.
	MaxPaletteSize = 0xffff
)

// Palette is a fixed number of colour swatches addressed by index. Swatches
// are stored packed, see colour.RGBAToInt32.
type Palette struct {
	swatches        []uint32
	swatchesLock    sync.RWMutex
	stateLock       sync.RWMutex
	stateRgbBase64  string
	stateRgbaBase64 string
}

func NewPalette(size uint, background colour.Value) *Palette {
	result := &Palette{swatches: make([]uint32, size)}

	packed := background.Int32()
	for i := range result.swatches {
		result.swatches[i] = packed
	}

	return result
}

func (p *Palette) Size() uint {
	return uint(len(p.swatches))
}

func (p *Palette) SetSwatch(i uint, c colour.Value) error {
	if i >= p.Size() {
		return errors.New("swatch index is not inside palette")
	}

	p.swatchesLock.Lock()
	p.swatches[i] = c.Int32()
	p.swatchesLock.Unlock()

	return nil
}

func (p *Palette) GetSwatch(i uint) (colour.Value, error) {
	if i >= p.Size() {
		return colour.Default, errors.New("swatch index is not inside palette")
	}

	p.swatchesLock.RLock()
	packed := p.swatches[i]
	p.swatchesLock.RUnlock()

	return swatchColor(packed), nil
}

func swatchColor(packed uint32) colour.Value {
	rgb, alpha := colour.Int32ToRGBA(packed)
	return colour.New(colour.Components{rgb[0], rgb[1], rgb[2], alpha})
}

func (p *Palette) GetStateRgbBase64() string {
	p.stateLock.RLock()
	defer p.stateLock.RUnlock()
	return p.stateRgbBase64
}

func (p *Palette) GetStateRgbaBase64() string {
	p.stateLock.RLock()
	defer p.stateLock.RUnlock()
	return p.stateRgbaBase64
}

// CalculateStates re-encodes all swatches for the STATE command.
func (p *Palette) CalculateStates() {
	resultRgbBytes := make([]byte, 0, len(p.swatches)*3)
	resultRgbaBytes := make([]byte, 0, len(p.swatches)*4)

	p.swatchesLock.RLock()
	for _, packed := range p.swatches {
		rgb, alpha := colour.Int32ToRGBA(packed)
		resultRgbBytes = append(resultRgbBytes, byte(rgb[0]), byte(rgb[1]), byte(rgb[2]))
		resultRgbaBytes = append(resultRgbaBytes, byte(rgb[0]), byte(rgb[1]), byte(rgb[2]), byte(alpha))
	}
	p.swatchesLock.RUnlock()

	p.stateLock.Lock()
	defer p.stateLock.Unlock()
	p.stateRgbBase64 = fmt.Sprintf("STATE %v %v\n", BINARY_ALG_RGB_BASE64, base64.StdEncoding.EncodeToString(resultRgbBytes))
	p.stateRgbaBase64 = fmt.Sprintf("STATE %v %v\n", BINARY_ALG_RGBA_BASE64, base64.StdEncoding.EncodeToString(resultRgbaBytes))
}
