package id3v2

import (
	"fmt"

	binutil "github.com/simonhull/id3chapters/internal/binary"
	"github.com/simonhull/id3chapters/internal/registry"
	"github.com/simonhull/id3chapters/internal/text"
	"github.com/simonhull/id3chapters/internal/types"
)

// DefaultMaxElementIDLength caps the scan for a CHAP element id terminator.
const DefaultMaxElementIDLength = 255

// chapterFixedSize is the four 4-byte timing and offset fields.
const chapterFixedSize = 16

var (
	frameCHAP = types.FrameID{'C', 'H', 'A', 'P'}
	frameTIT2 = types.FrameID{'T', 'I', 'T', '2'}
	frameTIT3 = types.FrameID{'T', 'I', 'T', '3'}
)

// ChapterDecoder decodes CHAP frames.
//
// CHAP frame format:
//
//	[element_id\0][start_time(4)][end_time(4)][start_offset(4)][end_offset(4)][subframes...]
//
// The title comes from a nested TIT2 sub-frame, or from the first other
// text sub-frame when there is no TIT2. A nested TIT3 becomes the
// description.
type ChapterDecoder struct {
	text         text.Decoder
	maxElementID int
}

// NewChapterDecoder creates a ChapterDecoder using td for titles.
// A non-positive maxElementID selects DefaultMaxElementIDLength.
func NewChapterDecoder(td text.Decoder, maxElementID int) *ChapterDecoder {
	if td == nil {
		td = text.NewTranscoder()
	}
	if maxElementID <= 0 {
		maxElementID = DefaultMaxElementIDLength
	}
	return &ChapterDecoder{text: td, maxElementID: maxElementID}
}

// DecodeFrame implements registry.FrameDecoder.
//
// A CHAP frame too short for its element id and fixed fields is dropped
// with a warning. Every other problem still appends the chapter, with an
// empty title where the title could not be recovered.
func (d *ChapterDecoder) DecodeFrame(ctx *registry.Context) {
	s := ctx.Stream
	end := ctx.Frame.End()

	idLimit := min(int64(d.maxElementID), end-s.Tell()-chapterFixedSize)
	if idLimit <= 0 {
		ctx.Warn(types.Warning{
			Stage:   "chapters",
			Message: fmt.Sprintf("CHAP frame too short (%d bytes)", ctx.Frame.Size),
			Offset:  ctx.Frame.Start,
			Err:     types.ErrTruncatedRead,
		})
		return
	}

	elementID, err := s.ReadTerminated(int(idLimit), "CHAP element id")
	if err != nil {
		ctx.Warn(types.Warning{
			Stage:   "chapters",
			Message: fmt.Sprintf("CHAP element id: %v", err),
			Offset:  ctx.Frame.Start,
			Err:     err,
		})
		return
	}

	cr := binutil.NewChainReader(s)
	chapter := types.Chapter{
		ElementID:   string(elementID),
		StartTimeMs: binutil.ReadChained[uint32](cr, "CHAP start time"),
		EndTimeMs:   binutil.ReadChained[uint32](cr, "CHAP end time"),
		StartOffset: binutil.ReadChained[uint32](cr, "CHAP start offset"),
		EndOffset:   binutil.ReadChained[uint32](cr, "CHAP end offset"),
	}
	if err := cr.Error(); err != nil {
		ctx.Warn(types.Warning{
			Stage:   "chapters",
			Message: fmt.Sprintf("CHAP %q timing: %v", chapter.ElementID, err),
			Offset:  ctx.Frame.Start,
			Err:     err,
		})
		return
	}

	d.decodeSubFrames(ctx, &chapter, end)
	ctx.Chapters.Append(chapter)
}

// decodeSubFrames walks the sub-frames between the current offset and end,
// which is the CHAP frame's end. It stops at the first sub-frame header that
// cannot be read.
func (d *ChapterDecoder) decodeSubFrames(ctx *registry.Context, chapter *types.Chapter, end int64) {
	s := ctx.Stream
	var fallback string
	var haveTitle bool

	// A sub-frame needs its header plus at least the encoding byte
	for end-s.Tell() >= types.FrameHeaderSize+1 {
		sub, err := ReadFrameHeader(s, ctx.Tag)
		if err != nil {
			ctx.Warn(types.Warning{
				Stage:   "chapters",
				Message: fmt.Sprintf("CHAP %q sub-frame header: %v", chapter.ElementID, err),
				Offset:  sub.Start,
				Err:     err,
			})
			break
		}
		if sub.IsPadding() {
			break
		}

		size := int64(sub.Size)
		if avail := end - sub.BodyStart(); size > avail {
			ctx.Warn(types.Warning{
				Stage: "chapters",
				Message: fmt.Sprintf("CHAP %q sub-frame %s declares %d bytes, only %d available",
					chapter.ElementID, sub.ID, size, avail),
				Offset: sub.Start,
				Err:    types.ErrNestedFrameOutOfBounds,
			})
			size = avail
		}

		switch {
		case sub.ID == frameTIT2:
			chapter.Title = d.readText(ctx, sub, size)
			haveTitle = true
		case sub.ID == frameTIT3:
			chapter.Description = d.readText(ctx, sub, size)
		case sub.ID.IsText() && !haveTitle && fallback == "":
			fallback = d.readText(ctx, sub, size)
		}

		if sub.BodyStart()+size >= end {
			break
		}
		if err := s.Seek(sub.BodyStart()+size, "CHAP sub-frame "+sub.ID.String()); err != nil {
			break
		}
	}

	if !haveTitle {
		chapter.Title = fallback
	}
}

// readText reads [encoding][payload] from a text sub-frame body of size
// bytes. Failures yield "" and a warning.
func (d *ChapterDecoder) readText(ctx *registry.Context, sub types.FrameHeader, size int64) string {
	if size < 1 {
		return ""
	}

	// Declared sizes are untrusted; ReadN checks them against the stream
	buf, err := ctx.Stream.ReadN(size, "sub-frame "+sub.ID.String())
	if err != nil {
		ctx.Warn(types.Warning{
			Stage:   "chapters",
			Message: fmt.Sprintf("sub-frame %s: %v", sub.ID, err),
			Offset:  sub.Start,
			Err:     err,
		})
		return ""
	}

	enc := types.TextEncoding(buf[0])
	title, err := d.text.Decode(buf[1:], enc)
	if err != nil {
		ctx.Warn(types.Warning{
			Stage:   "text",
			Message: fmt.Sprintf("sub-frame %s: %v", sub.ID, err),
			Offset:  sub.Start,
			Err:     err,
		})
		if !enc.Valid() {
			return ""
		}
	}
	return title
}
