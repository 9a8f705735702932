package sprite

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfigIdentifierOffset(t *testing.T) {
	// The canvas size moves with the identifier length.
	for _, id := range []string{"", "a", "some-much-longer-document-id"} {
		width, height, err := decodeConfig(buildContainer(t, id, 320, 200, nil))
		require.NoError(t, err)
		assert.Equal(t, uint32(320), width)
		assert.Equal(t, uint32(200), height)
	}
}

func TestDecodeConfigTooShort(t *testing.T) {
	data := buildContainer(t, "doc", 320, 200, nil)

	for i := 0; i < len(data); i++ {
		_, _, err := decodeConfig(data[:i])
		assert.Equal(t, ErrMalformedHeader, err)
	}
}

func TestDecodeConfigBogusIdentifierLength(t *testing.T) {
	data := make([]byte, headerSize+16)
	binary.LittleEndian.PutUint64(data[idSizeOffset:], ^uint64(0))

	_, _, err := decodeConfig(data)
	assert.Equal(t, ErrMalformedHeader, err)
}
