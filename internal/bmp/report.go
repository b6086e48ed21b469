package bmp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vitorstraggiotti/stegano/internal/utils"
)

// Width of the dotted label column in reports.
const labelWidth = 33

var compressionNames = map[uint32]string{
	BI_RGB:            "none (BI_RGB)",
	BI_RLE8:           "RLE 8-bit/pixel (BI_RLE8)",
	BI_RLE4:           "RLE 4-bit/pixel (BI_RLE4)",
	BI_BITFIELDS:      "bit field masks / OS/2 Huffman 1D (BI_BITFIELDS)",
	BI_JPEG:           "JPEG / OS/2 RLE-24 (BI_JPEG)",
	BI_PNG:            "PNG (BI_PNG)",
	BI_ALPHABITFIELDS: "RGBA bit field masks (BI_ALPHABITFIELDS)",
	BI_CMYK:           "none, CMYK (BI_CMYK)",
	BI_CMYKRLE8:       "RLE-8, CMYK (BI_CMYKRLE8)",
	BI_CMYKRLE4:       "RLE-4, CMYK (BI_CMYKRLE4)",
}

var colorSpaceNames = map[uint32]string{
	LCS_CALIBRATED_RGB:      "calibrated RGB (LCS_CALIBRATED_RGB)",
	LCS_sRGB:                "sRGB (LCS_sRGB)",
	LCS_WINDOWS_COLOR_SPACE: "Windows default color space (LCS_WINDOWS_COLOR_SPACE)",
	PROFILE_LINKED:          "linked profile (PROFILE_LINKED)",
	PROFILE_EMBEDDED:        "embedded profile (PROFILE_EMBEDDED)",
}

var intentNames = map[uint32]string{
	LCS_GM_ABS_COLORIMETRIC: "absolute colorimetric (LCS_GM_ABS_COLORIMETRIC)",
	LCS_GM_BUSINESS:         "business / saturation (LCS_GM_BUSINESS)",
	LCS_GM_GRAPHICS:         "graphics / relative colorimetric (LCS_GM_GRAPHICS)",
	LCS_GM_IMAGES:           "images / perceptual (LCS_GM_IMAGES)",
}

func compressionName(code uint32) string {
	return enumName(compressionNames, code, fmt.Sprint(code))
}

func colorSpaceName(code uint32) string {
	return enumName(colorSpaceNames, code, fmt.Sprintf("0x%08X", code))
}

func intentName(code uint32) string {
	return enumName(intentNames, code, fmt.Sprint(code))
}

// Known codes are named, unknown ones flagged; the raw code is always shown.
func enumName(names map[uint32]string, code uint32, raw string) string {
	if name, ok := names[code]; ok {
		return name + " [" + raw + "]"
	}
	return "invalid value [" + raw + "]"
}

// Report reads only the headers from r and describes every field of them.
// No pixel data is read.
func Report(r io.Reader) (string, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	writeReport(&sb, h)
	return sb.String(), nil
}

// ReportFile is Report for a file on disk.
func ReportFile(filename string) (string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", &FormatError{Kind: IoFailure, Detail: "opening " + filename, Err: err}
	}
	defer file.Close()

	return Report(bufio.NewReader(file))
}

type reportWriter struct {
	sb *strings.Builder
}

func (rw reportWriter) field(label, format string, a ...any) {
	rw.sb.WriteString(utils.Leader(label, labelWidth))
	fmt.Fprintf(rw.sb, format, a...)
	rw.sb.WriteByte('\n')
}

func (rw reportWriter) blank() { rw.sb.WriteByte('\n') }

func writeReport(sb *strings.Builder, h *Header) {
	rw := reportWriter{sb}
	f := h.File

	rw.field("Signature", "%q", f.Type[:])
	rw.field("File size", "%d bytes", f.Size)
	rw.field("Reserved 1", "%d", f.Reserved1)
	rw.field("Reserved 2", "%d", f.Reserved2)
	rw.field("Offset to pixel matrix", "%d bytes", f.OffBits)
	rw.blank()

	rw.field("Header type", "%s", h.Info.Version())
	base := h.Info.Base()
	rw.field("Header size", "%d bytes", base.Size)
	rw.field("Image width", "%d pixels", base.Width)
	rw.field("Image height", "%d pixels", base.Height)
	rw.field("Color planes", "%d", base.Planes)
	rw.field("Bits per pixel", "%d", base.BitCount)
	rw.field("Compression method", "%s", compressionName(base.Compression))
	rw.field("Image size", "%d bytes", base.SizeImage)
	rw.field("X resolution", "%d pixels/meter", base.XPixelsPerM)
	rw.field("Y resolution", "%d pixels/meter", base.YPixelsPerM)
	rw.field("Palette colors", "%d", base.ColorsUsed)
	rw.field("Important colors", "%d", base.ColorsImportant)

	switch info := h.Info.(type) {
	case *InfoHeaderV2:
		rw.masks(info, nil)
	case *InfoHeaderV3:
		rw.masks(&info.InfoHeaderV2, &info.AlphaMask)
	case *InfoHeaderV4:
		rw.masks(&info.InfoHeaderV2, &info.AlphaMask)
		rw.colorSpace(info)
	case *InfoHeaderV5:
		rw.masks(&info.InfoHeaderV2, &info.AlphaMask)
		rw.colorSpace(&info.InfoHeaderV4)
		rw.field("Rendering intent", "%s", intentName(info.Intent))
		rw.field("Profile data offset", "%d bytes", info.ProfileData)
		rw.field("Profile size", "%d bytes", info.ProfileSize)
		rw.field("Reserved", "%d", info.Reserved)
	}
	rw.blank()

	// Derived values, as this package would read the pixels
	width := int(base.Width)
	if width < MinDimension || width > MaxDimension {
		return
	}
	height := int(base.Height)
	if height < 0 {
		height = -height
	}
	rw.field("Row stride", "%d bytes", RowSize(width))
	rw.field("Row padding", "%d bytes", Padding(width))
	if height >= MinDimension && height <= MaxDimension {
		bits := width * height * bytesPerPixel
		rw.field("Payload capacity", "%d bits (%d bytes)", bits, bits/8)
	}
}

func (rw reportWriter) masks(h *InfoHeaderV2, alpha *uint32) {
	rw.field("Red mask", "0x%08X", h.RedMask)
	rw.field("Green mask", "0x%08X", h.GreenMask)
	rw.field("Blue mask", "0x%08X", h.BlueMask)
	if alpha != nil {
		rw.field("Alpha mask", "0x%08X", *alpha)
	}
}

func (rw reportWriter) colorSpace(h *InfoHeaderV4) {
	rw.field("Color space", "%s", colorSpaceName(h.CSType))

	e := h.Endpoints
	for _, ep := range []struct {
		name string
		xyz  CIEXYZ
	}{{"red", e.Red}, {"green", e.Green}, {"blue", e.Blue}} {
		rw.field("X "+ep.name+" endpoint", "%d (%.6f)", ep.xyz.X, fixed2dot30(ep.xyz.X))
		rw.field("Y "+ep.name+" endpoint", "%d (%.6f)", ep.xyz.Y, fixed2dot30(ep.xyz.Y))
		rw.field("Z "+ep.name+" endpoint", "%d (%.6f)", ep.xyz.Z, fixed2dot30(ep.xyz.Z))
	}

	rw.field("Gamma red", "0x%X (%.4f)", h.GammaRed, fixed16dot16(h.GammaRed))
	rw.field("Gamma green", "0x%X (%.4f)", h.GammaGreen, fixed16dot16(h.GammaGreen))
	rw.field("Gamma blue", "0x%X (%.4f)", h.GammaBlue, fixed16dot16(h.GammaBlue))
}

func fixed2dot30(v int32) float64 {
	return float64(v) / (1 << 30)
}

func fixed16dot16(v uint32) float64 {
	return float64(v) / (1 << 16)
}
