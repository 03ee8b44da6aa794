package image

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pkg/errors"
)

// Load decodes the png or jpeg image at path.
func Load(path string) (image.Image, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, errors.Wrap(e, "open image")
	}
	defer f.Close()

	i, _, e := image.Decode(f)
	if e != nil {
		return nil, errors.Wrapf(e, "decode %s", path)
	}

	return i, nil
}
