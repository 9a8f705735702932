package sprite

import "encoding/binary"

// decodeConfig reads the canvas dimensions out of the container. The size
// field sits immediately after the variable-length identifier string, so
// its offset depends on the identifier length recorded in the header.
func decodeConfig(data []byte) (width, height uint32, err error) {
	if len(data) < headerSize {
		return 0, 0, ErrMalformedHeader
	}

	idLen := binary.LittleEndian.Uint64(data[idSizeOffset:])
	if idLen > uint64(len(data)) {
		return 0, 0, ErrMalformedHeader
	}

	offset := headerSize + idLen
	if uint64(len(data)) < offset+8 {
		return 0, 0, ErrMalformedHeader
	}

	width = binary.LittleEndian.Uint32(data[offset:])
	height = binary.LittleEndian.Uint32(data[offset+4:])

	return width, height, nil
}
