package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned for image formats other than png and bmp
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format is an output image encoding
type Format string

const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

// ParseFormat accepts "png" or "bmp" with or without a leading dot
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".")); f {
	case FormatPNG, FormatBMP:
		return f, nil
	case "":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Extension returns the file extension including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// ContentType returns the MIME type for HTTP responses and object uploads
func (f Format) ContentType() string {
	if f == FormatBMP {
		return "image/bmp"
	}
	return "image/png"
}

// Encode writes img to w in format
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// EncodeBytes encodes img into a new byte slice
func EncodeBytes(img image.Image, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
