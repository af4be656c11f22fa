package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// Image wraps an exported frame as an image without copying it.
func Image(frame []byte, size int) (*image.NRGBA, error) {
	if size <= 0 || len(frame) != size*size*4 {
		return nil, fmt.Errorf("render: frame of %d bytes does not match size %d", len(frame), size)
	}
	return &image.NRGBA{Pix: frame, Stride: size * 4, Rect: image.Rect(0, 0, size, size)}, nil
}

// WritePNG encodes an exported frame as a PNG image.
func WritePNG(w io.Writer, frame []byte, size int) error {
	img, err := Image(frame, size)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
