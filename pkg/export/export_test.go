package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"golang.org/x/image/bmp"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 128, A: 255})
		}
	}
	return img
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"png", FormatPNG, false},
		{".BMP", FormatBMP, false},
		{"", FormatPNG, false},
		{"jpeg", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr || got != tt.expected {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.input, got, err)
		}
		if tt.wantErr && !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
		}
	}
}

func TestEncode(t *testing.T) {
	img := testImage(6, 4)

	tests := []struct {
		format Format
		decode func(r io.Reader) (image.Image, error)
	}{
		{FormatPNG, png.Decode},
		{FormatBMP, bmp.Decode},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			data, err := EncodeBytes(img, tt.format)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			decoded, err := tt.decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if decoded.Bounds() != img.Bounds() {
				t.Fatalf("Expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
			}
			r, g, b, _ := decoded.At(5, 3).RGBA()
			if r>>8 != 50 || g>>8 != 30 || b>>8 != 128 {
				t.Errorf("Expected (50,30,128), got (%d,%d,%d)", r>>8, g>>8, b>>8)
			}
		})
	}

	if err := Encode(io.Discard, img, Format("gif")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestThumbnail(t *testing.T) {
	img := testImage(200, 100)

	thumb := Thumbnail(img, 50)
	if thumb.Bounds().Dx() != 50 || thumb.Bounds().Dy() != 25 {
		t.Errorf("Expected 50x25 thumbnail, got %v", thumb.Bounds())
	}
	if Thumbnail(img, 500) != image.Image(img) {
		t.Error("Expected image that already fits to be returned unchanged")
	}
	if Thumbnail(img, 0) != image.Image(img) {
		t.Error("Expected non-positive size to disable resizing")
	}
}

func TestFileSink(t *testing.T) {
	dir := t.TempDir()
	sink := FileSink{Dir: dir}

	location, err := sink.Put(context.Background(), "cornell/frame.png", []byte("data"), FormatPNG)
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if location != filepath.Join(dir, "cornell", "frame.png") {
		t.Errorf("Unexpected location %s", location)
	}
	contents, err := os.ReadFile(location)
	if err != nil || string(contents) != "data" {
		t.Errorf("Expected file contents written, got %q, %v", contents, err)
	}
}

func TestObjectName(t *testing.T) {
	a := ObjectName("spheres", FormatBMP)
	b := ObjectName("spheres", FormatBMP)
	if a == b {
		t.Error("Expected unique object names")
	}
	if !strings.HasPrefix(a, "spheres/") || !strings.HasSuffix(a, ".bmp") {
		t.Errorf("Unexpected object name %q", a)
	}
}

type mockS3 struct {
	s3iface.S3API
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (m *mockS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	m.input = input
	m.body, _ = io.ReadAll(input.Body)
	return &s3.PutObjectOutput{}, m.err
}

func TestS3Sink_Put(t *testing.T) {
	client := &mockS3{}
	sink := NewS3SinkWithClient(client, "renders", "frames")

	location, err := sink.Put(context.Background(), "cornell/abc.png", []byte("png-bytes"), FormatPNG)
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if location != "s3://renders/frames/cornell/abc.png" {
		t.Errorf("Unexpected location %s", location)
	}
	if aws.StringValue(client.input.Bucket) != "renders" || aws.StringValue(client.input.Key) != "frames/cornell/abc.png" {
		t.Errorf("Unexpected bucket/key: %s/%s", aws.StringValue(client.input.Bucket), aws.StringValue(client.input.Key))
	}
	if aws.StringValue(client.input.ContentType) != "image/png" || aws.Int64Value(client.input.ContentLength) != 9 {
		t.Errorf("Unexpected content metadata: %v", client.input)
	}
	if string(client.body) != "png-bytes" {
		t.Errorf("Unexpected body %q", client.body)
	}
}

func TestS3Sink_PutError(t *testing.T) {
	client := &mockS3{err: errors.New("denied")}
	sink := NewS3SinkWithClient(client, "renders", "")

	if _, err := sink.Put(context.Background(), "x.png", []byte("x"), FormatPNG); err == nil {
		t.Error("Expected upload error")
	}
}

func TestNewS3Sink_RequiresBucket(t *testing.T) {
	if _, err := NewS3Sink(S3Config{}); err == nil {
		t.Error("Expected error without bucket")
	}
}
