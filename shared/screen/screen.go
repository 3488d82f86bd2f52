// Package screen provides framebuffer functionality for use by the master or a sequential worker.
package screen

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/alycolumbres/GDEV32-FinalProject/shared/colour"
)

// Image represents a rendered frame as rows of 8-bit RGB pixels.
// Row 0 is the top of the frame, and Pix packs rows top-down, 3 bytes per pixel.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// NewImage returns a zeroed (black) image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pix: make([]byte, 3*width*height)}
}

// Set writes a linear colour into the pixel at (x, y), clamping each channel to [0, 1].
// Writers working on disjoint rows don't need to synchronize.
func (img *Image) Set(x, y int, c colour.RGB) {
	r, g, b := c.RGB()
	i := 3 * (y*img.Width + x)
	img.Pix[i], img.Pix[i+1], img.Pix[i+2] = r, g, b
}

// Rows returns the packed pixels of count rows starting at row y.
// The returned slice aliases the image.
func (img *Image) Rows(y, count int) []byte {
	return img.Pix[3*y*img.Width : 3*(y+count)*img.Width]
}

// SetRows overwrites whole rows starting at row y with packed pixel data.
func (img *Image) SetRows(y int, data []byte) error {
	if len(data)%(3*img.Width) != 0 {
		return fmt.Errorf("row data length %d is not a whole number of rows", len(data))
	}
	if count := len(data) / (3 * img.Width); y < 0 || y+count > img.Height {
		return fmt.Errorf("rows [%d, %d) are outside the image", y, y+count)
	}
	copy(img.Pix[3*y*img.Width:], data)
	return nil
}

// EncodePNG encodes the image img as a PNG and writes it to w.
func (img *Image) EncodePNG(w io.Writer) error {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i := 0; i < img.Width*img.Height; i++ {
		out.Pix[4*i] = img.Pix[3*i]
		out.Pix[4*i+1] = img.Pix[3*i+1]
		out.Pix[4*i+2] = img.Pix[3*i+2]
		out.Pix[4*i+3] = 0xFF
	}

	encoder := png.Encoder{CompressionLevel: png.BestCompression}
	return encoder.Encode(w, out)
}

// WritePNG encodes the image img as a PNG file at the given path.
func (img *Image) WritePNG(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := img.EncodePNG(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
