package engine

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// PixelFormat is the channel layout of an Image
type PixelFormat int

const (
	RGB PixelFormat = iota
	RGBA
)

func (f PixelFormat) Channels() int {
	if f == RGBA {
		return 4
	}
	return 3
}

// Image is a tightly packed, top-down pixel buffer
type Image struct {
	Width, Height int
	Format        PixelFormat
	Pix           []byte
}

// LoadImage decodes a png or jpeg file
func LoadImage(path string) (*Image, error) {
	// load file
	file, err := os.Open(path)
	if err != nil {
		return nil, Unreadable(path, err)
	}
	defer file.Close()

	// decode image
	im, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrImageDecode, err)
	}

	return NewImage(im), nil
}

// NewImage converts im into packed RGB or RGBA, depending on whether the
// source carries an alpha channel.
func NewImage(im image.Image) *Image {
	bounds := im.Bounds()
	format := formatOf(im)

	img := &Image{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
	}

	n := format.Channels()
	img.Pix = make([]byte, img.Width*img.Height*n)

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(im.At(x, y)).(color.NRGBA)
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			if n == 4 {
				img.Pix[i+3] = c.A
			}
			i += n
		}
	}

	return img
}

func formatOf(im image.Image) PixelFormat {
	switch m := im.ColorModel(); m {
	case color.RGBAModel, color.RGBA64Model, color.NRGBAModel, color.NRGBA64Model, color.AlphaModel, color.Alpha16Model:
		return RGBA
	default:
		if p, ok := m.(color.Palette); ok {
			for _, c := range p {
				if _, _, _, a := c.RGBA(); a != 0xffff {
					return RGBA
				}
			}
		}
	}
	return RGB
}
