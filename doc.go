// Package id3chapters extracts chapter markers from the ID3v2 tag at the
// start of a media file, for use by a media player's navigation UI.
//
// # Quick Start
//
// Reading chapters from a file:
//
//	file, err := id3chapters.Open("episode.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, c := range file.Chapters {
//		fmt.Printf("[%d] %s %s\n", c.Index, c.StartTime(), c.Title)
//	}
//
// Reading from a stream a demuxer already owns:
//
//	file, err := id3chapters.ReadChapters(rs)
//
// ReadChapters always parses the tag from offset 0 and restores the
// stream's position before returning.
//
// # Supported Tags
//
//   - ID3v2.3 and ID3v2.2: frame sizes are plain 32-bit big-endian
//   - ID3v2.4: frame sizes are synchsafe integers
//   - CHAP frames with nested TIT2 (title) and TIT3 (description) frames
//   - Titles in ISO-8859-1, UTF-16 with BOM, UTF-16BE and UTF-8
//
// Tags using unsynchronisation are rejected. Extended headers are skipped.
//
// # Graceful Degradation
//
// A file without an ID3v2 tag has no chapters; that is not an error.
// Malformed input degrades at the narrowest scope possible:
//
//   - A missing "ID3" identifier, an unsupported version or
//     unsynchronisation: no chapters
//   - A truncated or out-of-bounds frame: the walk stops, earlier chapters
//     are kept
//   - An unknown title encoding or an oversized nested frame: that one
//     chapter gets an empty (or best-effort) title
//
// Each of these is recorded in File.Warnings. Use WithStrictParsing to turn
// warnings into errors, and WithLogger to send them to a slog.Logger.
//
// # Seek Points
//
// CHAP timestamps are milliseconds. File.SeekPoints converts chapters to
// navigation entries in microseconds (multiplying by MicrosPerMilli).
//
// # Extending
//
// Frame decoding is dispatched through a table keyed by the 4-byte frame
// id. WithFrameDecoder adds further frame kinds without touching the frame
// walker, and WithTextDecoder replaces the character set conversion.
package id3chapters
