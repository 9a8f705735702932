package sprite

import (
	"errors"
	"image"
	"image/color"
)

var (
	// ErrMalformedHeader means the container is too short to read the
	// identifier length or the canvas size.
	ErrMalformedHeader = errors.New("sprite: malformed header")

	// ErrInvalidDimensions means the header decoded but the canvas
	// width or height is zero.
	ErrInvalidDimensions = errors.New("sprite: invalid canvas dimensions")

	// ErrNoCompressedStreams means no zlib signature was found anywhere
	// in the container.
	ErrNoCompressedStreams = errors.New("sprite: no compressed streams found")

	// ErrNoValidLayers means candidate streams were found but none
	// inflated to a full canvas of pixels.
	ErrNoValidLayers = errors.New("sprite: no valid layers")
)

// Image is a decoded sprite canvas. Pix holds interleaved RGBA values in
// row-major order, top row first, one quad per canvas position.
type Image struct {
	Width  uint32
	Height uint32
	Pix    []byte
}

// At returns the RGBA value at (x, y). Out of range coordinates read as
// fully transparent black.
func (m *Image) At(x, y int) (r, g, b, a uint8) {
	p := pixelAt(m.Pix, int(m.Width), x, y)
	return p.r, p.g, p.b, p.a
}

// NRGBA copies the canvas into a stdlib image for use with the image/png
// and image/gif encoders.
func (m *Image) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, int(m.Width), int(m.Height)))
	copy(img.Pix, m.Pix)
	return img
}

// Decode reads a sprite from data and returns the composited canvas.
func Decode(data []byte) (*Image, error) {
	width, height, err := decodeConfig(data)
	if err != nil {
		return nil, err
	}
	if width == 0 || height == 0 {
		return nil, ErrInvalidDimensions
	}

	offsets := findStreams(data)
	if len(offsets) == 0 {
		return nil, ErrNoCompressedStreams
	}

	layers := inflateLayers(data, offsets, int(width)*int(height)*bytesPerPixel)
	if len(layers) == 0 {
		return nil, ErrNoValidLayers
	}

	return &Image{
		Width:  width,
		Height: height,
		Pix:    composite(layers, int(width), int(height)),
	}, nil
}

// DecodeConfig returns the color model and dimensions of a sprite without
// decompressing or compositing any layer data.
func DecodeConfig(data []byte) (image.Config, error) {
	width, height, err := decodeConfig(data)
	if err != nil {
		return image.Config{}, err
	}
	if width == 0 || height == 0 {
		return image.Config{}, ErrInvalidDimensions
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(width),
		Height:     int(height),
	}, nil
}
