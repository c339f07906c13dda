package types

import (
	"errors"
	"fmt"
)

// Error kinds raised while reading a tag. Tag-level kinds end the parse with
// zero chapters; walk-level kinds stop the frame walk but keep the chapters
// collected so far; chapter-level kinds only blank one chapter's title.
var (
	// ErrInvalidTagIdentifier means the stream does not start with "ID3".
	ErrInvalidTagIdentifier = errors.New("invalid ID3v2 tag identifier")
	// ErrUnsupportedUnsynchronisation means the tag uses unsynchronisation.
	ErrUnsupportedUnsynchronisation = errors.New("unsupported ID3v2 unsynchronisation")
	// ErrUnsupportedVersion means the tag major version is not 2, 3 or 4.
	ErrUnsupportedVersion = errors.New("unsupported ID3v2 version")
	// ErrTruncatedRead means fewer bytes were returned than requested.
	ErrTruncatedRead = errors.New("truncated read")
	// ErrFrameWalkOutOfBounds means a skip target moved backward or past the stream.
	ErrFrameWalkOutOfBounds = errors.New("frame walk out of bounds")
	// ErrUnknownTextEncoding means a text encoding byte outside 0-3.
	ErrUnknownTextEncoding = errors.New("unknown text encoding")
	// ErrNestedFrameOutOfBounds means a nested frame overruns its CHAP frame.
	ErrNestedFrameOutOfBounds = errors.New("nested frame out of bounds")
	// ErrSynchsafeOverflow means a value does not fit in 28 bits.
	ErrSynchsafeOverflow = errors.New("value exceeds synchsafe range")
)

// TruncatedReadError is returned when a read returns fewer bytes than requested.
type TruncatedReadError struct {
	Path   string
	What   string
	Offset int64
	Want   int
	Got    int
}

func (e *TruncatedReadError) Error() string {
	return fmt.Sprintf("%s: short read for %s at offset %d: got %d bytes, expected %d",
		e.Path, e.What, e.Offset, e.Got, e.Want)
}

// Unwrap lets errors.Is match ErrTruncatedRead.
func (e *TruncatedReadError) Unwrap() error {
	return ErrTruncatedRead
}

// OutOfBoundsError is returned when a seek target lies outside the stream
// or would move the walk backward.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	From   int64
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset < e.From {
		return fmt.Sprintf("%s: seek to %d would move backward from %d while skipping %s",
			e.Path, e.Offset, e.From, e.What)
	}
	return fmt.Sprintf("%s: offset %d out of bounds (limit: %d) while skipping %s",
		e.Path, e.Offset, e.Size, e.What)
}

// Unwrap lets errors.Is match ErrFrameWalkOutOfBounds.
func (e *OutOfBoundsError) Unwrap() error {
	return ErrFrameWalkOutOfBounds
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Warnings are diagnostics, not user-facing errors. Examples include:
//   - A frame walk that stopped at a truncated frame
//   - A chapter title in an unknown text encoding
//   - A nested title frame larger than its CHAP frame
//
// Warnings are collected in File.Warnings during parsing.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "tag", "frames", "chapters", "text"

	// Warning message
	Message string

	// Stream offset where the issue occurred (0 if not applicable)
	Offset int64

	// Underlying error kind, if any
	Err error
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
