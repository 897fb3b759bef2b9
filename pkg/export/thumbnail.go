package export

import (
	"image"

	"github.com/nfnt/resize"
)

// Thumbnail downsizes img to fit within maxSize x maxSize, keeping the aspect
// ratio. Images that already fit, or a non-positive maxSize, are returned
// as is.
func Thumbnail(img image.Image, maxSize int) image.Image {
	if maxSize <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() <= maxSize && b.Dy() <= maxSize {
		return img
	}
	return resize.Thumbnail(uint(maxSize), uint(maxSize), img, resize.Lanczos3)
}
