package bmp

import (
	"errors"
	"fmt"
	"io"
)

// ErrorKind classifies why a read or write failed.
type ErrorKind int

const (
	BadSignature ErrorKind = iota + 1
	UnsupportedHeader
	UnsupportedFormat
	DimensionOutOfRange
	TruncatedStream
	IoFailure
)

func (k ErrorKind) String() string {
	switch k {
	case BadSignature:
		return "bad signature"
	case UnsupportedHeader:
		return "unsupported header"
	case UnsupportedFormat:
		return "unsupported format"
	case DimensionOutOfRange:
		return "dimension out of range"
	case TruncatedStream:
		return "truncated stream"
	case IoFailure:
		return "i/o failure"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// FormatError is returned by every operation in this package.
type FormatError struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

// Sentinels for errors.Is; they match any FormatError of the same Kind.
var (
	ErrBadSignature        = &FormatError{Kind: BadSignature}
	ErrUnsupportedHeader   = &FormatError{Kind: UnsupportedHeader}
	ErrUnsupportedFormat   = &FormatError{Kind: UnsupportedFormat}
	ErrDimensionOutOfRange = &FormatError{Kind: DimensionOutOfRange}
	ErrTruncatedStream     = &FormatError{Kind: TruncatedStream}
	ErrIoFailure           = &FormatError{Kind: IoFailure}
)

func (e *FormatError) Error() string {
	msg := "bmp: " + e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool {
	t, ok := target.(*FormatError)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, format string, a ...any) error {
	return &FormatError{Kind: kind, Detail: fmt.Sprintf(format, a...)}
}

// readError turns a failed read of what into TruncatedStream (the stream
// ended early) or IoFailure (anything else).
func readError(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &FormatError{Kind: TruncatedStream, Detail: "reading " + what, Err: io.ErrUnexpectedEOF}
	}
	return &FormatError{Kind: IoFailure, Detail: "reading " + what, Err: err}
}

func writeError(err error, what string) error {
	return &FormatError{Kind: IoFailure, Detail: "writing " + what, Err: err}
}

// checkDimensions enforces [MinDimension, MaxDimension] on both axes.
func checkDimensions(width, height int) error {
	switch {
	case width < MinDimension:
		return newError(DimensionOutOfRange, "width %d is below the minimum of %d", width, MinDimension)
	case width > MaxDimension:
		return newError(DimensionOutOfRange, "width %d exceeds the maximum of %d", width, MaxDimension)
	case height < MinDimension:
		return newError(DimensionOutOfRange, "height %d is below the minimum of %d", height, MinDimension)
	case height > MaxDimension:
		return newError(DimensionOutOfRange, "height %d exceeds the maximum of %d", height, MaxDimension)
	}
	return nil
}
