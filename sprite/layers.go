package sprite

import (
	"bytes"
	"compress/flate"
	"io/ioutil"
)

// findStreams returns the offset of every zlib signature in the container
// in ascending order. Offset order is layer order; the first stream in the
// file is the topmost layer.
func findStreams(data []byte) []int {
	var offsets []int
	for i := 0; i+1 < len(data); i++ {
		if data[i] != sigFirst {
			continue
		}
		for _, s := range sigSecond[:] {
			if data[i+1] == s {
				offsets = append(offsets, i)
				break
			}
		}
	}
	return offsets
}

// inflateLayers decompresses every candidate stream, keeping only buffers
// of exactly size bytes. A stream that fails to inflate, or that inflates
// to the wrong size, is a false signature match and is dropped.
func inflateLayers(data []byte, offsets []int, size int) [][]byte {
	var layers [][]byte
	for _, offset := range offsets {
		// Skip the two signature bytes; the remainder is a raw
		// deflate stream.
		r := flate.NewReader(bytes.NewReader(data[offset+2:]))
		b, err := ioutil.ReadAll(r)
		r.Close()
		if err != nil || len(b) != size {
			continue
		}
		layers = append(layers, b)
	}
	return layers
}
