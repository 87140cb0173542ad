package rendering

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Image holds tightly packed 8-bit RGB texels, row by row starting at the
// top-left corner of the source picture.
type Image struct {
	Data   []byte
	Width  int
	Height int
	Format string
}

func LoadImage(path string, flipVertical bool) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open texture %s: %w", path, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	img, err := DecodeImage(f, flipVertical)
	if err != nil {
		return nil, fmt.Errorf("could not decode texture %s: %w", path, err)
	}
	return img, nil
}

// DecodeImage decodes any registered image format and converts it to RGB8,
// dropping the alpha channel.
func DecodeImage(in io.Reader, flipVertical bool) (*Image, error) {
	src, format, err := image.Decode(in)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("image has no pixels (%dx%d)", w, h)
	}

	out := &Image{
		Data:   make([]byte, w*h*3),
		Width:  w,
		Height: h,
		Format: format,
	}

	for y := range h {
		row := y
		if flipVertical {
			row = h - 1 - y
		}
		for x := range w {
			// RGBA() is alpha-premultiplied, keep the straight channels
			c := color.NRGBAModel.Convert(src.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			i := (row*w + x) * 3
			out.Data[i+0] = c.R
			out.Data[i+1] = c.G
			out.Data[i+2] = c.B
		}
	}
	return out, nil
}
