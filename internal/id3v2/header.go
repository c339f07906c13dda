// Package id3v2 walks the frames of an ID3v2 tag and decodes chapter frames.
package id3v2

import (
	"encoding/binary"
	"fmt"

	binutil "github.com/simonhull/id3chapters/internal/binary"
	"github.com/simonhull/id3chapters/internal/types"
)

// Tag header flag bits.
const (
	flagUnsynchronisation = 0x80
	flagExtendedHeader    = 0x40
	flagExperimental      = 0x20
)

// ReadTagHeader parses the 10-byte tag header at the stream's current
// offset, which must be 0, and leaves the stream at the first frame.
//
// A stream without an "ID3" identifier is not an error condition for the
// caller: the returned header is simply not Valid and the error wraps
// types.ErrInvalidTagIdentifier. Any other non-nil error also comes with
// an invalid header.
//
// Major version 2 is accepted but its frames are still read with the 10-byte
// layout of 2.3. Real 2.2 tags use 6-byte frame headers and cannot carry
// CHAP frames, so they yield no chapters.
func ReadTagHeader(s *binutil.Stream) (types.TagHeader, error) {
	var header types.TagHeader

	buf := make([]byte, types.TagHeaderSize)
	if err := s.Read(buf, "ID3v2 header"); err != nil {
		return header, err
	}

	// Verify "ID3" magic bytes
	if string(buf[0:3]) != "ID3" {
		return header, fmt.Errorf("%s: %w", s.Path(), types.ErrInvalidTagIdentifier)
	}

	header.Version = types.Version{Major: buf[3], Minor: buf[4]}
	header.Flags = types.TagFlags{
		Unsynchronisation: buf[5]&flagUnsynchronisation != 0,
		ExtendedHeader:    buf[5]&flagExtendedHeader != 0,
		Experimental:      buf[5]&flagExperimental != 0,
	}
	header.Size = binutil.DecodeSynchsafe(buf[6:10])
	header.FramesStart = types.TagHeaderSize

	if header.Version.Major < 2 || header.Version.Major > 4 {
		return header, fmt.Errorf("%s: version %s: %w", s.Path(), header.Version, types.ErrUnsupportedVersion)
	}

	if header.Flags.Unsynchronisation {
		return header, fmt.Errorf("%s: %w", s.Path(), types.ErrUnsupportedUnsynchronisation)
	}

	if header.Flags.ExtendedHeader && header.Version.Major >= 3 {
		start, err := skipExtendedHeader(s, header)
		if err != nil {
			return header, err
		}
		header.FramesStart = start
	}

	header.Valid = true
	return header, nil
}

// skipExtendedHeader reads the extended header's own size field and skips
// exactly that region, returning the offset of the first frame.
//
// ID3v2.3 stores a plain size that excludes the 4 size bytes; ID3v2.4 stores
// a synchsafe size that includes them.
func skipExtendedHeader(s *binutil.Stream, header types.TagHeader) (int64, error) {
	sizeBuf := make([]byte, 4)
	if err := s.Read(sizeBuf, "extended header size"); err != nil {
		return 0, err
	}

	var start int64
	if header.Version.Major == 4 {
		size := int64(binutil.DecodeSynchsafe(sizeBuf))
		if size < int64(len(sizeBuf)) {
			return 0, &types.OutOfBoundsError{
				Path:   s.Path(),
				What:   "extended header",
				Offset: types.TagHeaderSize + size,
				From:   s.Tell(),
				Size:   s.Size(),
			}
		}
		start = types.TagHeaderSize + size
	} else {
		start = types.TagHeaderSize + int64(len(sizeBuf)) + int64(binary.BigEndian.Uint32(sizeBuf))
	}

	if start > header.End() {
		return 0, &types.OutOfBoundsError{
			Path:   s.Path(),
			What:   "extended header",
			Offset: start,
			From:   s.Tell(),
			Size:   header.End(),
		}
	}

	if err := s.SeekForward(start, "extended header"); err != nil {
		return 0, err
	}
	return start, nil
}
