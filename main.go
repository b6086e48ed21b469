// Stegano hides files inside 24-bit .bmp images (and reports on them).
package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"os"

	_ "golang.org/x/image/bmp"

	"github.com/vitorstraggiotti/stegano/internal/bmp"
)

const usage = `
Usage: %[1]s <option> <image_input> <file_to_attach_or_extract_to>

<option>:
 i  --> Show information on payload size limit that can be attached to the image.
 x  --> Extract payload from image.
 c  --> Attach payload to image.
 r  --> Show the bitmap headers of the image.
 n  --> Write the image back as a plain 24-bit bitmap (V1 header) to <file>.
 e  --> Export the image as PNG to <file>.
 b  --> Input is any PNG, JPEG, GIF or BMP image (converted to 24-bit first).
 p  --> Print the image in the terminal (small images only).

 Options can be combined. Ex.:
 Show info and attach payload: %[1]s ic img.bmp file_input
 Show info and extract payload: %[1]s ix img.bmp file_output
`

var (
	errUsage          = errors.New("wrong number of arguments")
	errNotImplemented = errors.New("payload embedding is not implemented yet")
)

type options struct {
	info    bool
	extract bool
	attach  bool
	report  bool
	rewrite bool
	export  bool
	anyFmt  bool
	preview bool
}

// Every option except r works on the decoded pixels
func (o options) needsPixels() bool {
	return o.info || o.extract || o.attach || o.rewrite || o.export || o.anyFmt || o.preview
}

// Parses the option letters, e.g. "ic"
func parseOptions(s string) (options, error) {
	var opts options
	if s == "" {
		return opts, errors.New("no option given")
	}

	for _, c := range s {
		switch c {
		case 'i':
			opts.info = true
		case 'x':
			opts.extract = true
		case 'c':
			opts.attach = true
		case 'r':
			opts.report = true
		case 'n':
			opts.rewrite = true
		case 'e':
			opts.export = true
		case 'b':
			opts.anyFmt = true
		case 'p':
			opts.preview = true
		default:
			return opts, fmt.Errorf("invalid option %q", c)
		}
	}

	// x, c, n and e all use the third argument
	if opts.extract && opts.attach {
		return opts, errors.New("incompatible options: can't extract and attach at the same time")
	}
	n := 0
	for _, uses := range []bool{opts.extract, opts.attach, opts.rewrite, opts.export} {
		if uses {
			n++
		}
	}
	if n > 1 {
		return opts, errors.New("incompatible options: only one of x, c, n and e can use the output file")
	}
	if opts.report && opts.anyFmt {
		return opts, errors.New("incompatible options: r reads bitmap headers, it can't be combined with b")
	}

	return opts, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("stegano: ")

	err := run(os.Args, os.Stdout)
	if errors.Is(err, errUsage) {
		fmt.Fprintf(os.Stderr, usage, os.Args[0])
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) != 4 {
		return errUsage
	}
	opts, err := parseOptions(args[1])
	if err != nil {
		return err
	}
	input, target := args[2], args[3]

	if opts.report {
		report, err := bmp.ReportFile(input)
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, report)
	}

	// The report only needs the headers
	if !opts.needsPixels() {
		return nil
	}

	img, err := readImage(input, opts.anyFmt)
	if err != nil {
		return err
	}
	defer img.Release()

	if opts.info {
		limit := img.CapacityBytes()
		fmt.Fprintf(stdout, "Max file size to be Attached (bytes): %d\t%.3fK\t%.3fM\n",
			limit, float64(limit)/1000.0, float64(limit)/1000000.0)
	}

	if opts.preview {
		if err := img.Preview(stdout); err != nil {
			return err
		}
	}

	switch {
	case opts.rewrite:
		return img.Save(target)
	case opts.export:
		return exportPNG(img, target)
	case opts.extract, opts.attach:
		if err := openPayload(target, opts.attach); err != nil {
			return err
		}
		return errNotImplemented
	}
	return nil
}

// openPayload checks that the payload can be read (attach) or written
// (extract). Nothing is truncated while embedding is still missing.
func openPayload(filename string, attach bool) error {
	var file *os.File
	var err error
	if attach {
		file, err = os.Open(filename)
	} else {
		file, err = os.OpenFile(filename, os.O_WRONLY|os.O_CREATE, 0o644)
	}
	if err != nil {
		return fmt.Errorf("could not open payload file: %w", err)
	}
	return file.Close()
}

func readImage(filename string, anyFormat bool) (*bmp.Image, error) {
	if !anyFormat {
		return bmp.ReadBitmap(filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	src, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filename, err)
	}
	img, err := bmp.FromImage(src)
	if err != nil {
		return nil, fmt.Errorf("converting %s image: %w", format, err)
	}
	return img, nil
}

func exportPNG(img *bmp.Image, filename string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return png.Encode(file, img.RGBA())
}
