package spriteterm

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHeaderSize = 24

func writeSprite(t *testing.T, path string, width, height uint32, layers [][]byte) {
	t.Helper()

	var b bytes.Buffer

	header := make([]byte, testHeaderSize)
	b.Write(header)

	require.NoError(t, binary.Write(&b, binary.LittleEndian, width))
	require.NoError(t, binary.Write(&b, binary.LittleEndian, height))

	for _, layer := range layers {
		zw := zlib.NewWriter(&b)
		_, err := zw.Write(layer)
		require.NoError(t, err)
		require.NoError(t, zw.Close())
	}

	require.NoError(t, ioutil.WriteFile(path, b.Bytes(), 0644))
}

func TestShow(t *testing.T) {
	dir, err := ioutil.TempDir("", "spriteterm")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "pixel.sprite")
	writeSprite(t, file, 1, 1, [][]byte{{5, 6, 7, 255}})

	var out bytes.Buffer
	s := New(log.New(ioutil.Discard, "", 0))
	require.NoError(t, s.Show(&out, file))

	assert.Equal(t, "\x1b[38;2;5;6;7m▄\x1b[0m\x1b[K\n\n", out.String())
}

func TestScanSkipsUndecodableFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "spriteterm")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	// A valid sprite alongside one with no compressed streams at all;
	// the batch must still render the valid one.
	writeSprite(t, filepath.Join(dir, "good.sprite"), 1, 1, [][]byte{{5, 6, 7, 255}})
	writeSprite(t, filepath.Join(dir, "bad.sprite"), 1, 1, nil)
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("not a sprite"), 0644))

	var out, logged bytes.Buffer
	s := New(log.New(&logged, "", 0))
	require.NoError(t, s.Scan(&out, dir))

	assert.Equal(t, "\x1b[38;2;5;6;7m▄\x1b[0m\x1b[K\n\n", out.String())
	assert.Contains(t, logged.String(), "bad.sprite")
	assert.Contains(t, logged.String(), "no compressed streams")
}

func TestExportPNG(t *testing.T) {
	dir, err := ioutil.TempDir("", "spriteterm")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "pixel.sprite")
	writeSprite(t, file, 1, 1, [][]byte{{5, 6, 7, 255}})

	var out bytes.Buffer
	s := New(log.New(ioutil.Discard, "", 0))
	require.NoError(t, s.Export(&out, file, "png"))

	// PNG signature
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, out.Bytes()[:4])

	assert.Error(t, s.Export(&out, file, "bmp"))
}
