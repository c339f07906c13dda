// Package binary provides bounds-checked sequential reading over a seekable
// stream, and the integer encodings used by ID3v2.
package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/simonhull/id3chapters/internal/types"
)

// Stream wraps an io.ReadSeeker with position tracking, bounds checking and
// helpful error messages.
//
// Reads never expose bytes that were not actually returned by the
// underlying reader: a short read is reported as a *types.TruncatedReadError.
type Stream struct {
	rs   io.ReadSeeker
	path string
	size int64
	pos  int64
}

// NewStream creates a Stream positioned where rs currently is.
// The stream extent is measured once by seeking to the end and back.
func NewStream(rs io.ReadSeeker, path string) (*Stream, error) {
	cur, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%s: tell: %w", path, err)
	}
	end, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("%s: seek to end: %w", path, err)
	}
	if _, err := rs.Seek(cur, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%s: seek back to %d: %w", path, cur, err)
	}

	return &Stream{
		rs:   rs,
		path: path,
		size: end,
		pos:  cur,
	}, nil
}

// Path returns the path associated with this stream.
func (s *Stream) Path() string {
	return s.path
}

// Size returns the stream extent in bytes.
func (s *Stream) Size() int64 {
	return s.size
}

// Tell returns the current absolute offset.
func (s *Stream) Tell() int64 {
	return s.pos
}

// Read fills b from the current offset and advances past the bytes read.
func (s *Stream) Read(b []byte, what string) error {
	off := s.pos
	n, err := io.ReadFull(s.rs, b)
	s.pos += int64(n)

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &types.TruncatedReadError{
			Path:   s.path,
			What:   what,
			Offset: off,
			Want:   len(b),
			Got:    n,
		}
	}
	if err != nil {
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", s.path, what, off, err)
	}

	return nil
}

// ReadN reads n bytes into a new buffer. A read that would run past the end
// of the stream fails before anything is allocated or consumed.
func (s *Stream) ReadN(n int64, what string) ([]byte, error) {
	if remain := s.size - s.pos; n < 0 || n > remain {
		return nil, &types.TruncatedReadError{
			Path:   s.path,
			What:   what,
			Offset: s.pos,
			Want:   int(n),
			Got:    int(max(remain, 0)),
		}
	}

	buf := make([]byte, n)
	if err := s.Read(buf, what); err != nil {
		return nil, err
	}
	return buf, nil
}

// Seek moves to the absolute offset off, which must lie within the stream.
func (s *Stream) Seek(off int64, what string) error {
	if off < 0 || off > s.size {
		return &types.OutOfBoundsError{
			Path:   s.path,
			What:   what,
			Offset: off,
			From:   s.pos,
			Size:   s.size,
		}
	}

	if _, err := s.rs.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("%s: seek to %d while skipping %s: %w", s.path, off, what, err)
	}

	s.pos = off
	return nil
}

// SeekForward is Seek that also refuses to move backward.
func (s *Stream) SeekForward(off int64, what string) error {
	if off < s.pos {
		return &types.OutOfBoundsError{
			Path:   s.path,
			What:   what,
			Offset: off,
			From:   s.pos,
			Size:   s.size,
		}
	}
	return s.Seek(off, what)
}

// Skip advances the offset by n bytes.
func (s *Stream) Skip(n int64, what string) error {
	return s.SeekForward(s.pos+n, what)
}

// ReadBE reads a big-endian value of type T and advances the offset.
func ReadBE[T uint8 | uint16 | uint32](s *Stream, what string) (T, error) {
	var zero T
	var size int

	// Determine size based on type
	switch any(zero).(type) {
	case uint8:
		size = 1
	case uint16:
		size = 2
	case uint32:
		size = 4
	}

	buf := make([]byte, size)
	if err := s.Read(buf, what); err != nil {
		return zero, err
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(buf[0])
	case uint16:
		val = T(binary.BigEndian.Uint16(buf))
	case uint32:
		val = T(binary.BigEndian.Uint32(buf))
	}

	return val, nil
}

// ReadTerminated reads bytes up to and including a zero byte, returning the
// bytes before the terminator. At most limit bytes are consumed; hitting the
// limit without a terminator is a truncated read.
func (s *Stream) ReadTerminated(limit int, what string) ([]byte, error) {
	off := s.pos
	out := make([]byte, 0, min(limit, 32))
	var b [1]byte

	for range limit {
		if err := s.Read(b[:], what); err != nil {
			return out, err
		}
		if b[0] == 0 {
			return out, nil
		}
		out = append(out, b[0])
	}

	return out, &types.TruncatedReadError{
		Path:   s.path,
		What:   what + " terminator",
		Offset: off,
		Want:   limit + 1,
		Got:    limit,
	}
}

// ChainReader allows chaining multiple reads with deferred error checking.
// This avoids repetitive "if err != nil" checks.
type ChainReader struct {
	s   *Stream
	err error
}

// NewChainReader creates a new ChainReader.
func NewChainReader(s *Stream) *ChainReader {
	return &ChainReader{s: s}
}

// ReadChained reads a value with deferred error checking.
// If a previous read failed, returns zero value without attempting read.
func ReadChained[T uint8 | uint16 | uint32](cr *ChainReader, what string) T {
	if cr.err != nil {
		var zero T
		return zero
	}

	val, err := ReadBE[T](cr.s, what)
	if err != nil {
		cr.err = err
		var zero T
		return zero
	}

	return val
}

// Bytes reads n raw bytes, accumulating any error.
func (cr *ChainReader) Bytes(n int, what string) []byte {
	if cr.err != nil {
		return nil
	}

	buf, err := cr.s.ReadN(int64(n), what)
	if err != nil {
		cr.err = err
		return nil
	}

	return buf
}

// Error returns the accumulated error, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}
