package id3chapters_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bogem/id3v2/v2"
)

type testChapter struct {
	id    string
	start time.Duration
	end   time.Duration
	title string
	desc  string
}

// buildTag writes an ID3v2.4 tag holding the given chapters, using an
// independent ID3v2 writer so the fixtures do not share code with the reader.
func buildTag(tb testing.TB, chapters ...testChapter) []byte {
	tb.Helper()

	tag := id3v2.NewEmptyTag()
	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle("Episode 42")
	tag.SetArtist("Test Podcast")

	for _, c := range chapters {
		cf := id3v2.ChapterFrame{
			ElementID:   c.id,
			StartTime:   c.start,
			EndTime:     c.end,
			StartOffset: id3v2.IgnoredOffset,
			EndOffset:   id3v2.IgnoredOffset,
			Title:       &id3v2.TextFrame{Encoding: id3v2.EncodingUTF8, Text: c.title},
		}
		if c.desc != "" {
			cf.Description = &id3v2.TextFrame{Encoding: id3v2.EncodingUTF8, Text: c.desc}
		}
		tag.AddChapterFrame(cf)
	}

	buf := &bytes.Buffer{}
	if _, err := tag.WriteTo(buf); err != nil {
		tb.Fatalf("write tag: %v", err)
	}
	return buf.Bytes()
}

// withAudio appends fake MPEG frame bytes after a tag.
func withAudio(tag []byte) []byte {
	audio := bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x64}, 256)
	return append(append([]byte{}, tag...), audio...)
}

// writeFile stores data in a temporary file and returns its path.
func writeFile(tb testing.TB, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatal(err)
	}
	return path
}

var episodeChapters = []testChapter{
	{id: "chp0", start: 0, end: 90 * time.Second, title: "Cold open"},
	{id: "chp1", start: 90 * time.Second, end: 15 * time.Minute, title: "Interview", desc: "With our guest"},
	{id: "chp2", start: 15 * time.Minute, end: 20 * time.Minute, title: "Listener mail ✉"},
}
