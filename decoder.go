package id3chapters

import (
	"github.com/simonhull/id3chapters/internal/registry"
	"github.com/simonhull/id3chapters/internal/text"
	"github.com/simonhull/id3chapters/internal/types"
)

// TextDecoder converts an ID3v2 text payload to UTF-8.
// See WithTextDecoder.
type TextDecoder = text.Decoder

// TextEncoding is an alias to types.TextEncoding.
type TextEncoding = types.TextEncoding

// Re-export the ID3v2 text encodings.
const (
	EncodingLatin1  = types.EncodingLatin1
	EncodingUTF16   = types.EncodingUTF16
	EncodingUTF16BE = types.EncodingUTF16BE
	EncodingUTF8    = types.EncodingUTF8
)

// FrameDecoder decodes one frame kind. See WithFrameDecoder.
type FrameDecoder = registry.FrameDecoder

// FrameDecoderFunc adapts a function to FrameDecoder.
type FrameDecoderFunc = registry.FrameDecoderFunc

// FrameContext is what a FrameDecoder receives for one frame.
type FrameContext = registry.Context

// FrameHeader is an alias to types.FrameHeader.
type FrameHeader = types.FrameHeader

// FrameID is an alias to types.FrameID.
type FrameID = types.FrameID
