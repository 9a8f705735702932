/*
Package sprite implements a decoder for the Pixel Studio sprite format.

A sprite file starts with a fixed 24 byte header whose final eight bytes
hold the little-endian length of a document identifier string immediately
following the header. The canvas width and height come next as two
little-endian 32-bit values. The rest of the file is opaque apart from the
layer pixel data, which is stored as zlib streams embedded at arbitrary
offsets; each stream inflates to exactly width*height*4 bytes of
interleaved RGBA data covering the full canvas, topmost layer first.

Layers are located by scanning for the two byte zlib signature rather than
by walking any index structure, so a stream that fails to inflate or that
inflates to the wrong size is treated as a spurious match and ignored.
*/
package sprite

const (
	headerSize   = 24
	idSizeOffset = headerSize - 8

	bytesPerPixel = 4
)

// A zlib stream starts with 0x78 followed by one of four flag bytes, one
// per compression level.
const sigFirst = 0x78

var sigSecond = [4]byte{0x01, 0x5e, 0x9c, 0xda}
