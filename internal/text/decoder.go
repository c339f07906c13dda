// Package text converts ID3v2 text payloads into UTF-8 strings.
package text

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/simonhull/id3chapters/internal/types"
)

// Decoder converts a byte run in one of the ID3v2 text encodings to UTF-8.
//
// Implementations must always return a valid UTF-8 string, possibly empty,
// even when they also return an error.
type Decoder interface {
	Decode(data []byte, enc types.TextEncoding) (string, error)
}

// Transcoder is the default Decoder, backed by golang.org/x/text.
type Transcoder struct{}

// NewTranscoder returns the default Decoder.
func NewTranscoder() *Transcoder {
	return &Transcoder{}
}

// Decode decodes data according to enc.
//
// The result is cut at the first NUL character, so trailing terminators in
// either single- or double-byte form are dropped. Unknown encodings yield
// an empty string and an error wrapping types.ErrUnknownTextEncoding.
func (t *Transcoder) Decode(data []byte, enc types.TextEncoding) (string, error) {
	var dec *encoding.Decoder

	switch enc {
	case types.EncodingLatin1:
		dec = charmap.ISO8859_1.NewDecoder()

	case types.EncodingUTF16:
		// A BOM overrides the big-endian default
		dec = unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		data = evenLength(data)

	case types.EncodingUTF16BE:
		dec = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		data = evenLength(data)

	case types.EncodingUTF8:
		return decodeUTF8(data)

	default:
		return "", fmt.Errorf("encoding byte 0x%02X: %w", byte(enc), types.ErrUnknownTextEncoding)
	}

	if len(data) == 0 {
		return "", nil
	}

	out, err := dec.Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", enc, err)
	}

	return cutNUL(string(out)), nil
}

// decodeUTF8 passes UTF-8 through, replacing malformed sequences.
func decodeUTF8(data []byte) (string, error) {
	s := cutNUL(string(data))
	if !utf8.ValidString(s) {
		return strings.ToValidUTF8(s, string(utf8.RuneError)), fmt.Errorf("malformed %s text", types.EncodingUTF8)
	}
	return s, nil
}

// evenLength drops a dangling odd byte from a UTF-16 payload.
func evenLength(data []byte) []byte {
	if len(data)%2 != 0 {
		return data[:len(data)-1]
	}
	return data
}

func cutNUL(s string) string {
	before, _, _ := strings.Cut(s, "\x00")
	return before
}
