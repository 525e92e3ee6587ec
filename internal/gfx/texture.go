package gfx

import (
	"fmt"
	"image"
	"os"

	// Decoders for texture files
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DecodeImage reads and decodes the image file at path.
func DecodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gfx: open texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("gfx: decode texture %s: %w", path, err)
	}
	return img, nil
}

// LoadTextures decodes every path and uploads it, returning the texture ids
// in the same order. The first failure aborts the whole load.
func LoadTextures(r Renderer, paths []string) ([]uint32, error) {
	ids := make([]uint32, 0, len(paths))
	for _, path := range paths {
		img, err := DecodeImage(path)
		if err != nil {
			return nil, err
		}
		id, err := r.UploadTexture(img)
		if err != nil {
			return nil, fmt.Errorf("gfx: upload texture %s: %w", path, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
