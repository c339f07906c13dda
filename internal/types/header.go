// Package types provides the core data structures shared by the ID3v2
// chapter parser: tag and frame headers, chapters, encodings and errors.
package types

import "fmt"

const (
	// TagHeaderSize is the size of the outer ID3v2 tag header.
	TagHeaderSize = 10
	// FrameHeaderSize is the size of an ID3v2.3/2.4 frame header.
	FrameHeaderSize = 10
	// MaxSynchsafe is the largest value a 4-byte synchsafe integer can hold.
	MaxSynchsafe = 1<<28 - 1
)

// Version is the ID3v2 version pair stored after the "ID3" identifier.
type Version struct {
	Major byte `json:"major" yaml:"major"`
	Minor byte `json:"minor" yaml:"minor"`
}

func (v Version) String() string {
	return fmt.Sprintf("2.%d.%d", v.Major, v.Minor)
}

// TagFlags holds the decoded bits of the tag header flags byte.
type TagFlags struct {
	Unsynchronisation bool `json:"unsynchronisation" yaml:"unsynchronisation"`
	ExtendedHeader    bool `json:"extended_header" yaml:"extended_header"`
	Experimental      bool `json:"experimental" yaml:"experimental"`
}

// TagHeader is the parsed 10-byte ID3v2 tag header.
//
// Size is always decoded as a synchsafe integer regardless of version and
// counts the bytes following the header. FramesStart is the absolute offset
// of the first frame, past any extended header.
type TagHeader struct {
	Version     Version  `json:"version" yaml:"version"`
	Flags       TagFlags `json:"flags" yaml:"flags"`
	Size        uint32   `json:"size" yaml:"size"`
	FramesStart int64    `json:"-" yaml:"-"`
	Valid       bool     `json:"valid" yaml:"valid"`
}

// End returns the absolute offset one past the last byte of the tag.
func (h TagHeader) End() int64 {
	return TagHeaderSize + int64(h.Size)
}

// FrameID is a 4-byte frame identifier such as "CHAP" or "TIT2".
type FrameID [4]byte

// NewFrameID builds a FrameID from a 4-character string.
func NewFrameID(s string) (FrameID, error) {
	var id FrameID
	if len(s) != len(id) {
		return id, fmt.Errorf("frame id %q: want %d bytes, got %d", s, len(id), len(s))
	}
	copy(id[:], s)
	return id, nil
}

func (id FrameID) String() string {
	return string(id[:])
}

// IsText reports whether id names a text information frame (T***).
func (id FrameID) IsText() bool {
	return id[0] == 'T' && id != FrameID{'T', 'X', 'X', 'X'}
}

// FrameHeader is one parsed frame header.
//
// Start is the absolute offset of the header's first byte. A header whose
// first id byte is zero is the padding sentinel that ends a frame walk.
type FrameHeader struct {
	ID    FrameID
	Size  uint32
	Start int64
}

// IsPadding reports whether h is the end-of-frames sentinel.
func (h FrameHeader) IsPadding() bool {
	return h.ID[0] == 0
}

// BodyStart returns the absolute offset of the frame body.
func (h FrameHeader) BodyStart() int64 {
	return h.Start + FrameHeaderSize
}

// End returns the absolute offset one past the frame body.
func (h FrameHeader) End() int64 {
	return h.Start + FrameHeaderSize + int64(h.Size)
}
