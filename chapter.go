package id3chapters

import (
	"github.com/simonhull/id3chapters/internal/types"
)

// Chapter is an alias to types.Chapter.
// Re-exporting from internal/types to maintain public API.
type Chapter = types.Chapter

// IgnoredOffset marks an unused CHAP byte offset.
const IgnoredOffset = types.IgnoredOffset

// MicrosPerMilli is the scale factor between CHAP timestamps, which are in
// milliseconds, and SeekPoint offsets, which are in microseconds.
const MicrosPerMilli = 1000

// SeekPoint is one navigation entry handed to a media player.
//
// TimeOffset is in microseconds: StartTimeMs * MicrosPerMilli. Name is the
// chapter title and is owned by the receiver.
type SeekPoint struct {
	TimeOffset int64  `json:"time_offset_us" yaml:"time_offset_us"`
	Name       string `json:"name" yaml:"name"`
}

// SeekPointsFor converts chapters to seek points, keeping their order.
func SeekPointsFor(chapters []Chapter) []SeekPoint {
	if len(chapters) == 0 {
		return nil
	}

	points := make([]SeekPoint, len(chapters))
	for i, c := range chapters {
		points[i] = SeekPoint{
			TimeOffset: int64(c.StartTimeMs) * MicrosPerMilli,
			Name:       c.Title,
		}
	}
	return points
}
