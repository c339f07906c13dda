package id3v2

import (
	binutil "github.com/simonhull/id3chapters/internal/binary"
	"github.com/simonhull/id3chapters/internal/types"
)

// ReadFrameHeader parses one 10-byte frame header at the current offset.
//
// Padding (a zero first id byte) or a short id read returns the sentinel
// header, whose IsPadding reports true; a short id read also returns the
// truncation error. The size field is decoded by the tag's major version.
// The two flag bytes are read and discarded.
func ReadFrameHeader(s *binutil.Stream, tag types.TagHeader) (types.FrameHeader, error) {
	header := types.FrameHeader{Start: s.Tell()}

	var id types.FrameID
	if err := s.Read(id[:], "frame id"); err != nil {
		return header, err
	}
	if id[0] == 0 {
		return header, nil
	}
	header.ID = id

	cr := binutil.NewChainReader(s)
	sizeBuf := cr.Bytes(4, "frame "+id.String()+" size")
	cr.Bytes(2, "frame "+id.String()+" flags")
	if err := cr.Error(); err != nil {
		return header, err
	}

	header.Size = binutil.DecodeFrameSize(sizeBuf, tag.Version.Major)
	return header, nil
}
