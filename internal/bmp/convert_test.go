package bmp

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestRGBAOrientation(t *testing.T) {
	img := newSampleImage(t, 4, 3)
	m := img.RGBA()

	if m.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Fatalf("bounds %v", m.Bounds())
	}
	// The last stored row is the top of the picture
	p := img.At(2, 2)
	if got, want := m.RGBAAt(2, 0), (color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff}); got != want {
		t.Errorf("RGBAAt(2, 0) = %v, want %v", got, want)
	}
	p = img.At(0, 0)
	if got, want := m.RGBAAt(0, 2), (color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff}); got != want {
		t.Errorf("RGBAAt(0, 2) = %v, want %v", got, want)
	}
}

func TestFromImageRoundTrip(t *testing.T) {
	img := newSampleImage(t, 6, 5)

	got, err := FromImage(img.RGBA())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got.Pixels.Pix, img.Pixels.Pix) {
		t.Error("FromImage(img.RGBA()) differs from img")
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	src.SetNRGBA(10, 20, color.NRGBA{R: 1, G: 2, B: 3, A: 0xff})

	img, err := FromImage(src)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 3 || img.Height != 2 {
		t.Fatalf("got %dx%d, want 3x2", img.Width, img.Height)
	}
	// Top-left of the source is the first pixel of the last stored row
	if got := img.At(0, 1); got != (Pixel{B: 3, G: 2, R: 1}) {
		t.Errorf("At(0, 1) = %v", got)
	}
}

func TestFromImageFlattensAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 0})
	src.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 0xff})
	src.SetNRGBA(0, 1, color.NRGBA{R: 255, G: 0, B: 0, A: 0xff})

	img, err := FromImage(src)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		x, y int
		want Pixel
	}{
		{0, 1, Pixel{B: 255, G: 255, R: 255}}, // transparent -> white
		{1, 1, Pixel{}},
		{0, 0, Pixel{R: 255}},
	}
	for _, tt := range tests {
		if got := img.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestFromImageTooSmall(t *testing.T) {
	_, err := FromImage(image.NewGray(image.Rect(0, 0, 1, 10)))
	if !errors.Is(err, ErrDimensionOutOfRange) {
		t.Errorf("got %v, want dimension out of range", err)
	}
}

func TestPreview(t *testing.T) {
	img := newSampleImage(t, 2, 3)
	img.Set(0, 2, Pixel{B: 3, G: 2, R: 1})

	var buf bytes.Buffer
	if err := img.Preview(&buf); err != nil {
		t.Fatal(err)
	}
	lines := bytes.Split(bytes.TrimSuffix(buf.Bytes(), []byte("\n")), []byte("\n"))
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !bytes.HasPrefix(lines[0], []byte("\033[48;2;1;2;3m  \033[0m")) {
		t.Errorf("first line starts with %q", lines[0])
	}
}
