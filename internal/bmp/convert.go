package bmp

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// RGBA converts the bitmap to an *image.RGBA. Stored rows are bottom-up
// (the encoder always writes a positive height), so the last stored row
// becomes the top of the returned image.
func (img *Image) RGBA() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		src := img.Row(img.Height - 1 - y)
		out := dst.Pix[y*dst.Stride : y*dst.Stride+img.Width*4]
		for x := 0; x < img.Width; x++ {
			s, d := src[x*3:x*3+3:x*3+3], out[x*4:x*4+4:x*4+4]
			d[0], d[1], d[2], d[3] = s[2], s[1], s[0], 0xff
		}
	}
	return dst
}

// FromImage converts any image to a 24-bit bitmap. Translucent pixels are
// flattened onto white since the format has no alpha channel.
func FromImage(src image.Image) (*Image, error) {
	b := src.Bounds()
	img, err := NewImage(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Over)

	for y := 0; y < img.Height; y++ {
		in := rgba.Pix[y*rgba.Stride : y*rgba.Stride+img.Width*4]
		dst := img.Row(img.Height - 1 - y)
		for x := 0; x < img.Width; x++ {
			s, d := in[x*4:x*4+4:x*4+4], dst[x*3:x*3+3:x*3+3]
			d[0], d[1], d[2] = s[2], s[1], s[0]
		}
	}
	return img, nil
}
