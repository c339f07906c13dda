package id3chapters

import (
	"log/slog"

	"github.com/simonhull/id3chapters/internal/id3v2"
	"github.com/simonhull/id3chapters/internal/registry"
	"github.com/simonhull/id3chapters/internal/text"
	"github.com/simonhull/id3chapters/internal/types"
)

// Option configures behavior when reading chapters.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	file, err := id3chapters.Open("episode.mp3",
//	    id3chapters.WithStrictParsing(),
//	    id3chapters.WithLogger(slog.Default()),
//	)
type Option func(*readOptions)

// readOptions holds configuration for reading chapters.
type readOptions struct {
	strictParsing  bool // Fail on any warning
	ignoreWarnings bool // Suppress all warnings
	logger         *slog.Logger
	textDecoder    TextDecoder
	maxElementID   int
	extra          map[types.FrameID]FrameDecoder
}

// defaultOptions returns the default configuration.
func defaultOptions() *readOptions {
	return &readOptions{
		logger:       slog.New(slog.DiscardHandler),
		textDecoder:  text.NewTranscoder(),
		maxElementID: id3v2.DefaultMaxElementIDLength,
	}
}

// table builds the frame decoder table for these options.
func (o *readOptions) table() *registry.Table {
	t := id3v2.NewTable(o.textDecoder, o.maxElementID)
	for id, d := range o.extra {
		t.Register(id, d)
	}
	return t
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, a truncated tag or a title in an unknown encoding only
// produces warnings alongside the chapters that could be recovered.
//
// Example:
//
//	file, err := id3chapters.Open("episode.mp3", id3chapters.WithStrictParsing())
//	// err != nil if ANY issue is encountered
func WithStrictParsing() Option {
	return func(o *readOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Warnings are still logged when a logger is configured.
func WithIgnoreWarnings() Option {
	return func(o *readOptions) {
		o.ignoreWarnings = true
	}
}

// WithLogger sets the logger that receives parse diagnostics at debug level.
//
// By default diagnostics are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(o *readOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTextDecoder replaces the character set conversion used for titles.
//
// The default is backed by golang.org/x/text.
func WithTextDecoder(d TextDecoder) Option {
	return func(o *readOptions) {
		if d != nil {
			o.textDecoder = d
		}
	}
}

// WithMaxElementIDLength caps how many bytes are scanned for a CHAP
// element id terminator. Default is 255.
func WithMaxElementIDLength(n int) Option {
	return func(o *readOptions) {
		o.maxElementID = n
	}
}

// WithFrameDecoder registers a decoder for an additional 4-character frame
// id. Registering "CHAP" replaces the built-in chapter decoder. Ids that are
// not exactly 4 bytes long are ignored.
//
// Example:
//
//	counter := id3chapters.FrameDecoderFunc(func(ctx *id3chapters.FrameContext) {
//	    seen++
//	})
//	file, err := id3chapters.Open("episode.mp3",
//	    id3chapters.WithFrameDecoder("APIC", counter),
//	)
func WithFrameDecoder(id string, d FrameDecoder) Option {
	return func(o *readOptions) {
		fid, err := types.NewFrameID(id)
		if err != nil || d == nil {
			return
		}
		if o.extra == nil {
			o.extra = make(map[types.FrameID]FrameDecoder)
		}
		o.extra[fid] = d
	}
}
