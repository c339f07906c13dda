package id3v2

import (
	"errors"
	"testing"

	"github.com/simonhull/id3chapters/internal/types"
)

func TestReadFrameHeader(t *testing.T) {
	data := []byte{
		'T', 'I', 'T', '2', // Frame ID
		0x00, 0x00, 0x01, 0x00, // Size
		0x00, 0x00, // Flags
	}

	tests := []struct {
		name  string
		major byte
		want  uint32
	}{
		{name: "v2.3 raw big-endian", major: 3, want: 256},
		{name: "v2.4 synchsafe", major: 4, want: 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStream(t, data)
			tagHeader := types.TagHeader{Version: types.Version{Major: tt.major}}

			h, err := ReadFrameHeader(s, tagHeader)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if h.ID.String() != "TIT2" {
				t.Errorf("ID = %q, want TIT2", h.ID.String())
			}
			if h.Size != tt.want {
				t.Errorf("Size = %d, want %d", h.Size, tt.want)
			}
			if h.Start != 0 {
				t.Errorf("Start = %d, want 0", h.Start)
			}
			if s.Tell() != 10 {
				t.Errorf("Tell() = %d, want 10", s.Tell())
			}
		})
	}
}

func TestReadFrameHeader_RecordsStart(t *testing.T) {
	data := append(make([]byte, 7), frame(3, "CHAP", []byte{0x00})...)
	s := newStream(t, data)
	if err := s.Seek(7, "setup"); err != nil {
		t.Fatal(err)
	}

	h, err := ReadFrameHeader(s, types.TagHeader{Version: types.Version{Major: 3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Start != 7 {
		t.Errorf("Start = %d, want 7", h.Start)
	}
	if h.End() != 18 {
		t.Errorf("End() = %d, want 18", h.End())
	}
}

func TestReadFrameHeader_Padding(t *testing.T) {
	s := newStream(t, make([]byte, 16))

	h, err := ReadFrameHeader(s, types.TagHeader{Version: types.Version{Major: 3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !h.IsPadding() {
		t.Error("expected padding sentinel")
	}
	if h.Size != 0 {
		t.Errorf("Size = %d, want 0", h.Size)
	}
}

func TestReadFrameHeader_Truncated(t *testing.T) {
	tagHeader := types.TagHeader{Version: types.Version{Major: 3}}

	// Short id read is the end-of-frames sentinel plus the truncation
	h, err := ReadFrameHeader(newStream(t, []byte{'C', 'H'}), tagHeader)
	if !h.IsPadding() {
		t.Error("short id read should return the padding sentinel")
	}
	if !errors.Is(err, types.ErrTruncatedRead) {
		t.Errorf("error = %v, want ErrTruncatedRead", err)
	}

	// Short size read
	_, err = ReadFrameHeader(newStream(t, []byte{'C', 'H', 'A', 'P', 0x00, 0x00}), tagHeader)
	if !errors.Is(err, types.ErrTruncatedRead) {
		t.Errorf("error = %v, want ErrTruncatedRead", err)
	}

	// Missing flag bytes
	_, err = ReadFrameHeader(newStream(t, []byte{'C', 'H', 'A', 'P', 0x00, 0x00, 0x00, 0x01, 0x00}), tagHeader)
	if !errors.Is(err, types.ErrTruncatedRead) {
		t.Errorf("error = %v, want ErrTruncatedRead", err)
	}
}
