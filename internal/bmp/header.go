package bmp

import (
	"encoding/binary"
	"io"
)

// ReadHeader reads the file header and the info header that follows it.
// The info header version is chosen from the pixel offset (OffBits - 14),
// not from the info header's own size field.
func ReadHeader(r io.Reader) (*Header, error) {
	var raw [FileHeaderSize]byte

	// Verify that this is a .BMP file before anything else
	if _, err := io.ReadFull(r, raw[:2]); err != nil {
		return nil, readError(err, "file signature")
	}
	if raw[0] != 'B' || raw[1] != 'M' {
		return nil, newError(BadSignature, "got %q, want \"BM\"", raw[:2])
	}

	// Rest of the File Header
	if _, err := io.ReadFull(r, raw[2:]); err != nil {
		return nil, readError(err, "file header")
	}
	h := Header{File: FileHeader{
		Type:      [2]byte{raw[0], raw[1]},
		Size:      binary.LittleEndian.Uint32(raw[2:6]),
		Reserved1: binary.LittleEndian.Uint16(raw[6:8]),
		Reserved2: binary.LittleEndian.Uint16(raw[8:10]),
		OffBits:   binary.LittleEndian.Uint32(raw[10:14]),
	}}

	switch h.File.OffBits - FileHeaderSize {
	case InfoHeaderSize:
		h.Info = new(InfoHeader)
	case InfoHeaderV2Size:
		h.Info = new(InfoHeaderV2)
	case InfoHeaderV3Size:
		h.Info = new(InfoHeaderV3)
	case InfoHeaderV4Size:
		h.Info = new(InfoHeaderV4)
	case InfoHeaderV5Size:
		h.Info = new(InfoHeaderV5)
	default:
		return nil, newError(UnsupportedHeader,
			"pixel offset %d implies a %d-byte info header; supported sizes are 40 (V1), 52 (V2), 56 (V3), 108 (V4) and 124 (V5)",
			h.File.OffBits, int64(h.File.OffBits)-FileHeaderSize)
	}

	if err := binary.Read(r, binary.LittleEndian, h.Info); err != nil {
		return nil, readError(err, h.Info.Version().String())
	}

	return &h, nil
}
