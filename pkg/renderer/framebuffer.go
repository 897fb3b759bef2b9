package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-direct-raytracer/pkg/core"
)

// FrameBuffer is a row-major grid of packed 0xFFRRGGBB pixels
type FrameBuffer struct {
	Width  int
	Height int
	Pixels []uint32
}

// NewFrameBuffer allocates a black frame of the given size
func NewFrameBuffer(width, height int) *FrameBuffer {
	width, height = max(width, 0), max(height, 0)
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

// Validate reports whether the buffer can be rendered into
func (fb *FrameBuffer) Validate() error {
	if fb == nil {
		return fmt.Errorf("frame buffer is nil")
	}
	if fb.Width <= 0 || fb.Height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", fb.Width, fb.Height)
	}
	if len(fb.Pixels) != fb.Width*fb.Height {
		return fmt.Errorf("frame buffer holds %d pixels, expected %dx%d=%d",
			len(fb.Pixels), fb.Width, fb.Height, fb.Width*fb.Height)
	}
	return nil
}

// At returns the packed pixel at (x, y)
func (fb *FrameBuffer) At(x, y int) uint32 {
	return fb.Pixels[y*fb.Width+x]
}

// Image converts the buffer to an RGBA image
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := core.UnpackRGB(fb.At(x, y))
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
