// bmp package implements a 24-bit uncompressed bitmap reader and writer.
//
// Any of the five info header versions (V1 to V5) is accepted on read;
// images are always written back with a V1 (BITMAPINFOHEADER) header, so
// masks, colorimetry and profiles of later versions are not preserved.
// Rows are kept in the order they are stored in the file.
package bmp

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/vitorstraggiotti/stegano/internal/utils"
)

const bytesPerPixel = 3

type Pixel struct {
	B, G, R byte
}

// PixelMatrix holds every row of an image in a single slice. Rows carry no
// padding in memory: row y is Pix[y*Stride : (y+1)*Stride].
type PixelMatrix struct {
	Pix    []byte // BGR triplets
	Stride int    // Bytes per row (3 * width)
}

type Image struct {
	Width  int
	Height int
	Pixels PixelMatrix
}

// Creates a blank (black) image of the given size
func NewImage(width, height int) (*Image, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	stride := width * bytesPerPixel
	return &Image{
		Width:  width,
		Height: height,
		Pixels: PixelMatrix{Pix: make([]byte, stride*height), Stride: stride},
	}, nil
}

// Row returns the pixel bytes of stored row y (no padding).
func (img *Image) Row(y int) []byte {
	start := y * img.Pixels.Stride
	return img.Pixels.Pix[start : start+img.Pixels.Stride : start+img.Pixels.Stride]
}

func (img *Image) At(x, y int) Pixel {
	i := y*img.Pixels.Stride + x*bytesPerPixel
	p := img.Pixels.Pix[i : i+3 : i+3]
	return Pixel{B: p[0], G: p[1], R: p[2]}
}

func (img *Image) Set(x, y int, c Pixel) {
	i := y*img.Pixels.Stride + x*bytesPerPixel
	p := img.Pixels.Pix[i : i+3 : i+3]
	p[0], p[1], p[2] = c.B, c.G, c.R
}

// CapacityBits is the number of color samples in the image, i.e. how many
// bits an LSB scheme could carry before any framing overhead.
func (img *Image) CapacityBits() int {
	return img.Width * img.Height * bytesPerPixel
}

func (img *Image) CapacityBytes() int {
	return img.CapacityBits() / 8
}

// Release drops the pixel buffer. Calling it more than once is harmless.
func (img *Image) Release() {
	img.Pixels = PixelMatrix{}
	img.Width = 0
	img.Height = 0
}

// Returns a Copy of the bitmap image
func (img *Image) Copy() *Image {
	dup := *img
	dup.Pixels.Pix = make([]byte, len(img.Pixels.Pix))
	copy(dup.Pixels.Pix, img.Pixels.Pix)
	return &dup
}

// Decode reads a 24-bit uncompressed bitmap from r. The stream is consumed
// strictly forward: header, then rows in stored order. Row padding is
// skipped whatever its content.
func Decode(r io.Reader) (*Image, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	// Support only 24bit uncompressed Bitmaps
	info := h.Info.Base()
	if info.BitCount != 24 {
		return nil, newError(UnsupportedFormat, "%d bits per pixel, only 24 is supported", info.BitCount)
	}
	if info.Compression != BI_RGB {
		return nil, newError(UnsupportedFormat, "compression %s, only uncompressed is supported", compressionName(info.Compression))
	}

	// The sign of height only tells the row order, which is kept as stored
	width, height := int(info.Width), int(info.Height)
	if height < 0 {
		height = -height
	}

	img, err := NewImage(width, height)
	if err != nil {
		return nil, err
	}

	padding := make([]byte, Padding(width))
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(r, img.Row(y)); err != nil {
			return nil, readError(err, fmt.Sprintf("pixel row %d", y))
		}

		// Discard padding bytes
		if _, err := io.ReadFull(r, padding); err != nil {
			return nil, readError(err, fmt.Sprintf("padding of row %d", y))
		}
	}

	return img, nil
}

// Reads a Bitmap file
func ReadBitmap(filename string) (*Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &FormatError{Kind: IoFailure, Detail: "opening " + filename, Err: err}
	}
	defer file.Close()

	return Decode(bufio.NewReader(file))
}

// Encode writes img to w as a 24-bit bitmap with a V1 (BITMAPINFOHEADER)
// header. Rows are written in stored order, each followed by zeroed padding.
func Encode(w io.Writer, img *Image) error {
	if err := checkDimensions(img.Width, img.Height); err != nil {
		return err
	}
	if want := img.Width * img.Height * bytesPerPixel; len(img.Pixels.Pix) != want || img.Pixels.Stride != img.Width*bytesPerPixel {
		return newError(DimensionOutOfRange, "pixel matrix holds %d bytes with stride %d, want %d bytes with stride %d for %dx%d",
			len(img.Pixels.Pix), img.Pixels.Stride, want, img.Width*bytesPerPixel, img.Width, img.Height)
	}

	sizeImage := uint32(RowSize(img.Width) * img.Height)
	bfh := FileHeader{
		Type:    [2]byte{'B', 'M'},
		Size:    FileHeaderSize + InfoHeaderSize + sizeImage,
		OffBits: FileHeaderSize + InfoHeaderSize,
	}
	bih := InfoHeader{
		Size:        InfoHeaderSize,
		Width:       int32(img.Width),
		Height:      int32(img.Height),
		Planes:      1,
		BitCount:    24,
		Compression: BI_RGB,
		SizeImage:   sizeImage,
		XPixelsPerM: ResolutionX,
		YPixelsPerM: ResolutionY,
	}

	// Create a buffer (to reduce syscalls)
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, &bfh); err != nil {
		return writeError(err, "file header")
	}
	if err := binary.Write(bw, binary.LittleEndian, &bih); err != nil {
		return writeError(err, "info header")
	}

	padding := make([]byte, Padding(img.Width))
	for y := 0; y < img.Height; y++ {
		if _, err := bw.Write(img.Row(y)); err != nil {
			return writeError(err, fmt.Sprintf("pixel row %d", y))
		}
		if _, err := bw.Write(padding); err != nil {
			return writeError(err, fmt.Sprintf("padding of row %d", y))
		}
	}

	if err := bw.Flush(); err != nil {
		return writeError(err, "pixel data")
	}
	return nil
}

// Saves the bitmap image onto local disk
func (img *Image) Save(filename string) (err error) {
	// Don't leave an empty file behind for an image that can't be written
	if err := checkDimensions(img.Width, img.Height); err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return &FormatError{Kind: IoFailure, Detail: "creating " + filename, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &FormatError{Kind: IoFailure, Detail: "closing " + filename, Err: cerr}
		}
	}()

	return Encode(file, img)
}

// Preview prints the bitmap as colored blocks in the terminal, top row
// first (stored rows are bottom-up). Use for small images only.
func (img *Image) Preview(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for y := img.Height - 1; y >= 0; y-- {
		for x := 0; x < img.Width; x++ {
			p := img.At(x, y)
			bw.WriteString(utils.ColoredBlock("  ", int(p.R), int(p.G), int(p.B)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
