package id3chapters

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/id3chapters/internal/binary"
	"github.com/simonhull/id3chapters/internal/id3v2"
)

// File holds the chapters read from one media file's ID3v2 tag.
//
// A file without an ID3v2 tag, or with a tag malformed beyond recovery,
// is not an error: it has a Tag that is not Valid and no Chapters.
type File struct {
	// Path to the media file ("" for streams read with ReadChapters)
	Path string `json:"path" yaml:"path"`

	// Stream size in bytes
	Size int64 `json:"size" yaml:"size"`

	// Parsed ID3v2 tag header
	Tag TagHeader `json:"tag" yaml:"tag"`

	// Chapters in the order their CHAP frames appear in the tag
	Chapters []Chapter `json:"chapters" yaml:"chapters"`

	// Warnings encountered during parsing (non-fatal issues)
	Warnings []Warning `json:"-" yaml:"-"`
}

// Open opens a media file and reads the chapters from its ID3v2 tag.
//
// The file is closed before Open returns.
//
// Example:
//
//	file, err := id3chapters.Open("episode.mp3")
//	if err != nil {
//		return err
//	}
//	for _, c := range file.Chapters {
//		fmt.Printf("%s %s\n", c.StartTime(), c.Title)
//	}
func Open(path string, opts ...Option) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return readChapters(f, path, opts)
}

// ReadChapters reads the chapters from the ID3v2 tag at the start of rs.
//
// The tag is always read from offset 0. The position of rs is saved before
// parsing and restored on every return path, so ReadChapters can be called
// by a demuxer that is in the middle of reading the stream.
//
// An error is returned only when rs cannot report its position or size,
// when the position cannot be restored, or when WithStrictParsing is set
// and a warning was raised.
func ReadChapters(rs io.ReadSeeker, opts ...Option) (*File, error) {
	return readChapters(rs, "", opts)
}

func readChapters(rs io.ReadSeeker, path string, opts []Option) (file *File, err error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	s, err := binary.NewStream(rs, path)
	if err != nil {
		return nil, err
	}

	start := s.Tell()
	defer func() {
		if _, serr := rs.Seek(start, io.SeekStart); serr != nil && err == nil {
			file, err = nil, fmt.Errorf("restore stream position %d: %w", start, serr)
		}
	}()

	res := id3v2.Walk(s, options.table())

	for _, w := range res.Warnings {
		options.logger.Debug("id3v2 diagnostic",
			slog.String("path", path),
			slog.String("stage", w.Stage),
			slog.Int64("offset", w.Offset),
			slog.String("message", w.Message),
		)
	}
	options.logger.Debug("id3v2 tag read",
		slog.String("path", path),
		slog.Bool("valid", res.Tag.Valid),
		slog.String("version", res.Tag.Version.String()),
		slog.Int("frames", res.Frames),
		slog.Int("chapters", len(res.Chapters)),
	)

	file = &File{
		Path:     path,
		Size:     s.Size(),
		Tag:      res.Tag,
		Chapters: res.Chapters,
		Warnings: res.Warnings,
	}

	if options.strictParsing && len(file.Warnings) > 0 {
		w := file.Warnings[0]
		if w.Err != nil {
			return nil, fmt.Errorf("strict parsing failed: %s: %w", w.Message, w.Err)
		}
		return nil, fmt.Errorf("strict parsing failed: %s", w.Message)
	}

	// Apply option: ignore warnings
	if options.ignoreWarnings {
		file.Warnings = nil
	}

	return file, nil
}

// SeekPoints converts the chapters to the host player's navigation entries.
func (f *File) SeekPoints() []SeekPoint {
	return SeekPointsFor(f.Chapters)
}

// OpenContext opens a file with context support for cancellation.
//
// This is a thin wrapper around Open() that checks context before starting;
// parsing itself is short and synchronous.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return Open(path, opts...)
}

// OpenMany reads chapters from multiple files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. The first
// error cancels the remaining work and is returned.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	files, err := id3chapters.OpenMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range files {
//		fmt.Printf("%s: %d chapters\n", f.Path, len(f.Chapters))
//	}
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU()) // Limit concurrent operations

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := Open(path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
