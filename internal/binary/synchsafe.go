package binary

import (
	"encoding/binary"
	"fmt"

	"github.com/simonhull/id3chapters/internal/types"
)

// DecodeSynchsafe decodes a synchsafe integer (7 bits per byte).
// ID3v2 uses 7-bit encoding where bit 7 is always 0; a set high bit is
// masked off rather than trusted.
func DecodeSynchsafe(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

// EncodeSynchsafe encodes n as a 4-byte synchsafe integer.
func EncodeSynchsafe(n uint32) ([4]byte, error) {
	var b [4]byte
	if n > types.MaxSynchsafe {
		return b, fmt.Errorf("encode %d: %w", n, types.ErrSynchsafeOverflow)
	}
	b[0] = byte(n >> 21 & 0x7F)
	b[1] = byte(n >> 14 & 0x7F)
	b[2] = byte(n >> 7 & 0x7F)
	b[3] = byte(n & 0x7F)
	return b, nil
}

// IsSynchsafe reports whether every byte of b has its high bit clear.
func IsSynchsafe(b []byte) bool {
	for _, c := range b {
		if c&0x80 != 0 {
			return false
		}
	}
	return true
}

// DecodeFrameSize decodes a frame size field for the given tag major version.
//
// ID3v2.4 stores frame sizes as synchsafe integers; ID3v2.2 and ID3v2.3 use
// plain 32-bit big-endian. The rule is picked by version only, never by
// inspecting the bytes.
func DecodeFrameSize(b []byte, major byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	if major >= 4 {
		return DecodeSynchsafe(b)
	}
	return binary.BigEndian.Uint32(b)
}
