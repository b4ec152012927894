package protocol

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Snapshot layout: a big endian uint16 swatch count followed by one little
// endian uint32 per swatch in colour.RGBAToInt32 packing.
const snapshotHeaderLength = 2

func (p *Palette) WriteToFile(file io.WriterAt) error {
	p.swatchesLock.RLock()
	content := make([]byte, snapshotHeaderLength, snapshotHeaderLength+len(p.swatches)*4)
	binary.BigEndian.PutUint16(content, uint16(len(p.swatches)))
	for _, packed := range p.swatches {
		content = binary.LittleEndian.AppendUint32(content, packed)
	}
	p.swatchesLock.RUnlock()

	if _, err := file.WriteAt(content, 0); err != nil {
		return err
	}
	if syncer, ok := file.(interface{ Sync() error }); ok {
		_ = syncer.Sync()
	}
	return nil
}

func NewPaletteFromSnapshot(file io.ReaderAt, size uint) (*Palette, error) {
	fileLength := snapshotHeaderLength + int(size)*4
	fileContent := make([]byte, fileLength)

	if n, err := file.ReadAt(fileContent, 0); err != nil && !(err == io.EOF && n == fileLength) {
		return nil, fmt.Errorf("could not read snapshot: expected %v bytes but got %v: %w", fileLength, n, err)
	}

	if stored := uint(binary.BigEndian.Uint16(fileContent)); stored != size {
		return nil, fmt.Errorf("snapshot holds %v swatches but palette size is %v", stored, size)
	}

	palette := &Palette{swatches: make([]uint32, size)}
	for i := range palette.swatches {
		offset := snapshotHeaderLength + i*4
		palette.swatches[i] = binary.LittleEndian.Uint32(fileContent[offset : offset+4])
	}
	return palette, nil
}
