package spriteterm

import (
	"fmt"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"io/ioutil"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/spriteterm/spriteterm/sprite"
	"github.com/spriteterm/spriteterm/term"
)

// Show decodes the sprite at path and writes it to w as styled text.
func (s *SpriteTerm) Show(w io.Writer, path string) error {
	img, err := s.decodeFile(path)
	if err != nil {
		return err
	}

	for _, line := range term.Render(img) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// Export decodes the sprite at path and writes its composited canvas to w
// in the named image format, either "png" or "gif".
func (s *SpriteTerm) Export(w io.Writer, path, format string) error {
	img, err := s.decodeFile(path)
	if err != nil {
		return err
	}

	m := img.NRGBA()

	switch format {
	case "png":
		return png.Encode(w, m)
	case "gif":
		return gif.Encode(w, m, &gif.Options{
			NumColors: 256,
			Quantizer: quantize.MedianCutQuantizer{},
			Drawer:    draw.FloydSteinberg,
		})
	default:
		return fmt.Errorf("unsupported format \"%s\"", format)
	}
}

func (s *SpriteTerm) decodeFile(path string) (*sprite.Image, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return sprite.Decode(data)
}
