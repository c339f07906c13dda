package types

import "fmt"

// TextEncoding is the encoding byte that prefixes ID3v2 text payloads.
type TextEncoding byte

const (
	// EncodingLatin1 is ISO-8859-1.
	EncodingLatin1 TextEncoding = 0
	// EncodingUTF16 is UTF-16 with a byte order mark (historically "UCS-2").
	EncodingUTF16 TextEncoding = 1
	// EncodingUTF16BE is UTF-16 big-endian without a byte order mark.
	EncodingUTF16BE TextEncoding = 2
	// EncodingUTF8 is UTF-8.
	EncodingUTF8 TextEncoding = 3
)

// Valid reports whether e is one of the four defined encodings.
func (e TextEncoding) Valid() bool {
	return e <= EncodingUTF8
}

// TerminatorSize returns the width in bytes of a NUL terminator in e.
func (e TextEncoding) TerminatorSize() int {
	switch e {
	case EncodingUTF16, EncodingUTF16BE:
		return 2
	default:
		return 1
	}
}

func (e TextEncoding) String() string {
	switch e {
	case EncodingLatin1:
		return "ISO-8859-1"
	case EncodingUTF16:
		return "UTF-16"
	case EncodingUTF16BE:
		return "UTF-16BE"
	case EncodingUTF8:
		return "UTF-8"
	default:
		return fmt.Sprintf("encoding(0x%02X)", byte(e))
	}
}
