package types

import (
	"iter"
	"time"
)

// IgnoredOffset marks a CHAP byte offset field as unused.
const IgnoredOffset uint32 = 0xFFFFFFFF

// Chapter represents one chapter marker decoded from an ID3v2 CHAP frame.
//
// Title is always set (possibly to the empty string) so callers never have
// to distinguish an absent title from an empty one.
//
//	file, _ := id3chapters.Open("podcast.mp3")
//	for _, chapter := range file.Chapters {
//	    fmt.Printf("[%d] %s at %s\n",
//	        chapter.Index,
//	        chapter.Title,
//	        chapter.StartTime())
//	}
type Chapter struct {
	Index       int    `json:"index" yaml:"index"`
	ElementID   string `json:"element_id" yaml:"element_id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	StartTimeMs uint32 `json:"start_time_ms" yaml:"start_time_ms"`
	EndTimeMs   uint32 `json:"end_time_ms" yaml:"end_time_ms"`
	StartOffset uint32 `json:"start_offset" yaml:"start_offset"`
	EndOffset   uint32 `json:"end_offset" yaml:"end_offset"`
}

// StartTime returns the chapter start as a duration.
func (c Chapter) StartTime() time.Duration {
	return time.Duration(c.StartTimeMs) * time.Millisecond
}

// EndTime returns the chapter end as a duration.
func (c Chapter) EndTime() time.Duration {
	return time.Duration(c.EndTimeMs) * time.Millisecond
}

// HasByteOffsets reports whether the start and end byte offsets are in use.
func (c Chapter) HasByteOffsets() bool {
	return c.StartOffset != IgnoredOffset && c.EndOffset != IgnoredOffset
}

// ChapterList is the ordered chapter collection built during a frame walk.
//
// Chapters keep the order their CHAP frames appear in the tag. The list is
// never sorted and duplicate element ids are kept as distinct entries.
type ChapterList struct {
	items []Chapter
}

// Append adds c at the end of the list and assigns its 1-based Index.
func (l *ChapterList) Append(c Chapter) {
	c.Index = len(l.items) + 1
	l.items = append(l.items, c)
}

// Len returns the number of chapters collected so far.
func (l *ChapterList) Len() int {
	return len(l.items)
}

// At returns the chapter at position i (0-based).
func (l *ChapterList) At(i int) Chapter {
	return l.items[i]
}

// All iterates over the chapters in file order.
func (l *ChapterList) All() iter.Seq2[int, Chapter] {
	return func(yield func(int, Chapter) bool) {
		for i, c := range l.items {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Take hands the collected chapters to the caller and empties the list.
// The returned slice is owned by the caller.
func (l *ChapterList) Take() []Chapter {
	items := l.items
	l.items = nil
	return items
}
