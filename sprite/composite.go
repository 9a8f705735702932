package sprite

type pixel struct {
	r, g, b, a uint8
}

func (p pixel) black() bool {
	return p.r == 0 && p.g == 0 && p.b == 0
}

// pixelAt reads the pixel at (x, y) from a raw layer buffer. Out of range
// coordinates read as fully transparent black.
func pixelAt(layer []byte, width, x, y int) pixel {
	if x < 0 || y < 0 || x >= width {
		return pixel{}
	}
	i := (y*width + x) * bytesPerPixel
	if i+bytesPerPixel > len(layer) {
		return pixel{}
	}
	return pixel{layer[i], layer[i+1], layer[i+2], layer[i+3]}
}

func putPixel(raster []byte, width, x, y int, p pixel) {
	i := (y*width + x) * bytesPerPixel
	raster[i], raster[i+1], raster[i+2], raster[i+3] = p.r, p.g, p.b, p.a
}

// isMask reports whether a layer only ever cuts pixels out of the layers
// beneath it. A layer contributes no color of its own when every pixel is
// either pure black or fully transparent.
func isMask(layer []byte, width, height int) bool {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pixelAt(layer, width, x, y)
			if !p.black() && p.a > 0 {
				return false
			}
		}
	}
	return true
}

// composite merges the ordered layer list into a single RGBA raster.
// Layer 0 is the topmost layer. The list must not be empty.
func composite(layers [][]byte, width, height int) []byte {
	raster := make([]byte, width*height*bytesPerPixel)

	if len(layers) == 1 {
		compositeSingle(raster, layers[0], width, height)
		return raster
	}
	if isMask(layers[0], width, height) {
		compositeMasked(raster, layers, width, height)
		return raster
	}
	compositeContent(raster, layers, width, height)
	return raster
}

// compositeSingle copies the only layer, forcing pure black pixels to
// transparent; black is the canvas background color, not paint.
func compositeSingle(raster, layer []byte, width, height int) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pixelAt(layer, width, x, y)
			if p.black() {
				p = pixel{}
			}
			putPixel(raster, width, x, y, p)
		}
	}
}

// compositeMasked treats layer 0 as an exclusion mask over the remaining
// layers: wherever it has any alpha the output is transparent, elsewhere
// layer 1 shows through, overridden by any later layer with alpha.
func compositeMasked(raster []byte, layers [][]byte, width, height int) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if pixelAt(layers[0], width, x, y).a != 0 {
				continue
			}
			p := pixelAt(layers[1], width, x, y)
			for _, layer := range layers[2:] {
				if q := pixelAt(layer, width, x, y); q.a > 0 {
					p = q
				}
			}
			putPixel(raster, width, x, y, p)
		}
	}
}

// compositeContent stacks layers bottom-up. The last layer is the
// background; walking towards layer 0, any layer with alpha at a pixel
// replaces the accumulated value outright. There is no blending.
func compositeContent(raster []byte, layers [][]byte, width, height int) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pixelAt(layers[len(layers)-1], width, x, y)
			for i := len(layers) - 2; i >= 0; i-- {
				if q := pixelAt(layers[i], width, x, y); q.a > 0 {
					p = q
				}
			}
			putPixel(raster, width, x, y, p)
		}
	}
}
