// Package registry maps ID3v2 frame ids to the decoders that understand them.
package registry

import (
	"maps"

	"github.com/simonhull/id3chapters/internal/binary"
	"github.com/simonhull/id3chapters/internal/types"
)

// Context is what a decoder sees for one frame.
//
// Stream is positioned just after the frame header. The walker repositions
// the stream to Frame.End() after the decoder returns, so a decoder may stop
// early or overrun without desynchronising the walk.
type Context struct {
	Stream   *binary.Stream
	Tag      types.TagHeader
	Frame    types.FrameHeader
	Chapters *types.ChapterList

	// Warn records a diagnostic local to this frame.
	Warn func(types.Warning)
}

// FrameDecoder is implemented by every supported frame kind.
type FrameDecoder interface {
	// DecodeFrame consumes one frame body. It must not fail the walk:
	// problems are reported through ctx.Warn.
	DecodeFrame(ctx *Context)
}

// FrameDecoderFunc adapts a function to FrameDecoder.
type FrameDecoderFunc func(ctx *Context)

// DecodeFrame calls f(ctx).
func (f FrameDecoderFunc) DecodeFrame(ctx *Context) {
	f(ctx)
}

// Table maps frame ids to their decoders. Lookups are exact 4-byte matches.
type Table struct {
	decoders map[types.FrameID]FrameDecoder
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{decoders: make(map[types.FrameID]FrameDecoder)}
}

// Register registers a decoder for a frame id, replacing any previous one.
func (t *Table) Register(id types.FrameID, d FrameDecoder) {
	t.decoders[id] = d
}

// Get returns the decoder for a frame id.
// Returns nil if no decoder is registered for the id.
func (t *Table) Get(id types.FrameID) FrameDecoder {
	if t == nil {
		return nil
	}
	return t.decoders[id]
}

// Len returns the number of registered decoders.
func (t *Table) Len() int {
	return len(t.decoders)
}

// Clone returns an independent copy of t.
func (t *Table) Clone() *Table {
	return &Table{decoders: maps.Clone(t.decoders)}
}
