package spriteterm

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/spriteterm/spriteterm/sprite"
)

// Extension is the conventional filename extension for sprite files.
const Extension = ".sprite"

// Files are decoded one at a time; a sprite canvas is small, so anything
// bigger than this is not going to be one.
const maxFileSize = 16 << (10 * 2)

// skippable reports whether a decode failure is an expected condition for
// the file rather than a programming or I/O error. Corrupt or unrelated
// files in a scanned directory produce these and must not stop the batch.
func skippable(err error) bool {
	return errors.Is(err, sprite.ErrMalformedHeader) ||
		errors.Is(err, sprite.ErrInvalidDimensions) ||
		errors.Is(err, sprite.ErrNoCompressedStreams) ||
		errors.Is(err, sprite.ErrNoValidLayers)
}

// Scan walks path and renders every sprite file found to w, one after
// another. Files that fail to decode are logged and skipped; any other
// error aborts the walk.
func (s *SpriteTerm) Scan(w io.Writer, path string) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	return filepath.Walk(dir, func(file string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
		if info.Name()[0] == '.' {
			if info.Mode().IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// Ignore anything that isn't a normal file
		if !info.Mode().IsRegular() {
			return nil
		}

		if info.Size() > maxFileSize {
			return nil
		}

		if filepath.Ext(file) != Extension {
			return nil
		}

		if err := s.Show(w, file); err != nil {
			if skippable(err) {
				s.logger.Printf("Skipping \"%s\": %v\n", file, err)
				return nil
			}
			return err
		}

		return nil
	})
}
