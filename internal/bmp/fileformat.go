// BMP-specific structs and types
package bmp

// Sizes (in bytes) of the file header and the supported info headers.
const (
	FileHeaderSize   = 14
	InfoHeaderSize   = 40  // BITMAPINFOHEADER
	InfoHeaderV2Size = 52  // BITMAPV2INFOHEADER
	InfoHeaderV3Size = 56  // BITMAPV3INFOHEADER
	InfoHeaderV4Size = 108 // BITMAPV4HEADER
	InfoHeaderV5Size = 124 // BITMAPV5HEADER
)

// Images outside these bounds are neither read nor written.
const (
	MinDimension = 2
	MaxDimension = 20000
)

// Resolution written by the encoder, in pixels-per-meter (39.3701 * DPI).
const (
	ResolutionX = 2834
	ResolutionY = 2834
)

// Compression methods (biCompression)
const (
	BI_RGB            = 0
	BI_RLE8           = 1
	BI_RLE4           = 2
	BI_BITFIELDS      = 3
	BI_JPEG           = 4
	BI_PNG            = 5
	BI_ALPHABITFIELDS = 6
	BI_CMYK           = 11
	BI_CMYKRLE8       = 12
	BI_CMYKRLE4       = 13
)

// Color space types (bV4CSType / bV5CSType)
const (
	LCS_CALIBRATED_RGB      = 0
	LCS_sRGB                = 0x73524742 // 'sRGB'
	LCS_WINDOWS_COLOR_SPACE = 0x57696e20 // 'Win '
	PROFILE_LINKED          = 0x4c494e4b // 'LINK'
	PROFILE_EMBEDDED        = 0x4d424544 // 'MBED'
)

// Rendering intents (bV5Intent)
const (
	LCS_GM_BUSINESS         = 1
	LCS_GM_GRAPHICS         = 2
	LCS_GM_IMAGES           = 4
	LCS_GM_ABS_COLORIMETRIC = 8
)

// Version identifies which info header layout follows the file header.
type Version int

const (
	V1 Version = iota + 1
	V2
	V3
	V4
	V5
)

func (v Version) String() string {
	switch v {
	case V1:
		return "BITMAPINFOHEADER (V1)"
	case V2:
		return "BITMAPV2INFOHEADER (V2)"
	case V3:
		return "BITMAPV3INFOHEADER (V3)"
	case V4:
		return "BITMAPV4HEADER (V4)"
	case V5:
		return "BITMAPV5HEADER (V5)"
	}
	return "unknown"
}

// The BitmapFileHeader structure contains information about the type, size,
// and layout of a file that contains a DIB [device-independent bitmap].
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader

type FileHeader struct {
	Type      [2]byte // The file type: must be 0x4d42 (ASCII string "BM").
	Size      uint32  // The size, in bytes, of the bitmap file.
	Reserved1 uint16  // Reserved; must be zero.
	Reserved2 uint16  // Reserved; must be zero.
	OffBits   uint32  // Bitmap File Offset (In bytes) to Pixel Arrays
}

// DIBHeader is implemented by each info header version. Base gives access to
// the fields every version shares; anything else needs a type switch.
type DIBHeader interface {
	Version() Version
	Base() *InfoHeader
}

// The BitmapInfoHeader structure contains information about the
// dimensions and color format of DIB [device-independent bitmap].

type InfoHeader struct {
	Size            uint32 // The number of bytes required by the structure.
	Width           int32  // The width of the bitmap, in pixels.
	Height          int32  // The height of the bitmap, in pixels
	Planes          uint16 // The number of planes for the target device.
	BitCount        uint16 // The number of bits-per-pixel.
	Compression     uint32 // The type of compression
	SizeImage       uint32 // The size of the image (in bytes, row padding included).
	XPixelsPerM     int32  // The horizontal resolution, in pixels-per-meter.
	YPixelsPerM     int32  // The vertical resolution, in pixels-per-meter.
	ColorsUsed      uint32 // Number of color indexes that are actually used by bitmap.
	ColorsImportant uint32 // Number of color indexes required for displaying the bitmap.
}

func (h *InfoHeader) Version() Version  { return V1 }
func (h *InfoHeader) Base() *InfoHeader { return h }

// BITMAPV2INFOHEADER adds the RGB bit masks.
type InfoHeaderV2 struct {
	InfoHeader
	RedMask   uint32
	GreenMask uint32
	BlueMask  uint32
}

func (h *InfoHeaderV2) Version() Version { return V2 }

// BITMAPV3INFOHEADER adds the alpha mask.
type InfoHeaderV3 struct {
	InfoHeaderV2
	AlphaMask uint32
}

func (h *InfoHeaderV3) Version() Version { return V3 }

// CIEXYZ coordinates are 2.30 fixed-point values.
type CIEXYZ struct {
	X, Y, Z int32
}

// Endpoints of the red, green and blue primaries.
type CIEXYZTriple struct {
	Red, Green, Blue CIEXYZ
}

// BITMAPV4HEADER adds the color space, its endpoints and the gamma (16.16
// fixed-point) of each channel.
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapv4header
type InfoHeaderV4 struct {
	InfoHeaderV3
	CSType     uint32
	Endpoints  CIEXYZTriple
	GammaRed   uint32
	GammaGreen uint32
	GammaBlue  uint32
}

func (h *InfoHeaderV4) Version() Version { return V4 }

// BITMAPV5HEADER adds the rendering intent and the embedded/linked profile.
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapv5header
type InfoHeaderV5 struct {
	InfoHeaderV4
	Intent      uint32
	ProfileData uint32 // Offset from the start of this header to the profile data.
	ProfileSize uint32
	Reserved    uint32
}

func (h *InfoHeaderV5) Version() Version { return V5 }

// Header is a parsed file header plus the info header it points past.
type Header struct {
	File FileHeader
	Info DIBHeader
}

// Dimensions returns width and height exactly as stored (height may be negative).
func (h *Header) Dimensions() (width, height int32) {
	base := h.Info.Base()
	return base.Width, base.Height
}

// Padding returns the number of bytes appended to each row of a 24-bit
// bitmap so that the row length is a multiple of 4.
func Padding(width int) int {
	return (4 - (width*3)%4) % 4
}

// RowSize returns the on-disk length of a 24-bit row, padding included.
func RowSize(width int) int {
	return width*3 + Padding(width)
}
