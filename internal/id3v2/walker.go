package id3v2

import (
	"errors"
	"fmt"

	binutil "github.com/simonhull/id3chapters/internal/binary"
	"github.com/simonhull/id3chapters/internal/registry"
	"github.com/simonhull/id3chapters/internal/types"
)

// Result is the outcome of walking one tag.
type Result struct {
	Tag      types.TagHeader
	Chapters []types.Chapter
	Warnings []types.Warning

	// Frames counts the frame headers visited, decoded or not.
	Frames int
}

// Walk parses the tag header at offset 0 and visits every frame inside the
// tag, dispatching frames whose id is in table.
//
// Walk never fails. A missing or rejected tag header yields no chapters; a
// truncated or out-of-bounds frame stops the walk and keeps the chapters
// collected so far. Walk leaves the stream at an arbitrary offset; callers
// own position restoration.
func Walk(s *binutil.Stream, table *registry.Table) *Result {
	res := &Result{}
	warn := func(w types.Warning) {
		res.Warnings = append(res.Warnings, w)
	}

	if err := s.Seek(0, "ID3v2 header"); err != nil {
		warn(types.Warning{Stage: "tag", Message: err.Error(), Err: err})
		return res
	}

	tag, err := ReadTagHeader(s)
	res.Tag = tag
	if !tag.Valid {
		// No tag at all is the common case for files without chapters
		if err != nil && !errors.Is(err, types.ErrInvalidTagIdentifier) && !errors.Is(err, types.ErrTruncatedRead) {
			warn(types.Warning{Stage: "tag", Message: err.Error(), Err: err})
		}
		return res
	}

	var chapters types.ChapterList
	for s.Tell() < tag.End() {
		frame, err := ReadFrameHeader(s, tag)
		if err != nil {
			warn(types.Warning{
				Stage:   "frames",
				Message: fmt.Sprintf("frame walk stopped: %v", err),
				Offset:  frame.Start,
				Err:     err,
			})
			break
		}
		if frame.IsPadding() {
			break
		}
		res.Frames++

		if frame.End() > tag.End() {
			err := &types.OutOfBoundsError{
				Path:   s.Path(),
				What:   "frame " + frame.ID.String(),
				Offset: frame.End(),
				From:   frame.Start,
				Size:   tag.End(),
			}
			warn(types.Warning{
				Stage:   "frames",
				Message: fmt.Sprintf("frame %s overruns tag end %d: %v", frame.ID, tag.End(), err),
				Offset:  frame.Start,
				Err:     err,
			})
			break
		}

		if d := table.Get(frame.ID); d != nil {
			d.DecodeFrame(&registry.Context{
				Stream:   s,
				Tag:      tag,
				Frame:    frame,
				Chapters: &chapters,
				Warn:     warn,
			})
		}

		// Always resynchronise on the declared frame end, whatever the decoder consumed
		if err := s.Seek(frame.End(), "frame "+frame.ID.String()); err != nil {
			warn(types.Warning{
				Stage:   "frames",
				Message: fmt.Sprintf("cannot skip frame %s: %v", frame.ID, err),
				Offset:  frame.Start,
				Err:     err,
			})
			break
		}
	}

	res.Chapters = chapters.Take()
	return res
}
