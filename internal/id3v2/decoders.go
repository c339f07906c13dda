package id3v2

import (
	"github.com/simonhull/id3chapters/internal/registry"
	"github.com/simonhull/id3chapters/internal/text"
)

// NewTable returns the decoder table for every supported frame kind.
// Currently that is only CHAP.
func NewTable(td text.Decoder, maxElementID int) *registry.Table {
	t := registry.NewTable()
	t.Register(frameCHAP, NewChapterDecoder(td, maxElementID))
	return t
}
