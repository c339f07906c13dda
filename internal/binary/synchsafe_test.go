package binary

import (
	"errors"
	"testing"

	"github.com/simonhull/id3chapters/internal/types"
)

func TestDecodeSynchsafe(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  uint32
	}{
		{name: "zero", input: []byte{0x00, 0x00, 0x00, 0x00}, want: 0},
		{name: "low byte", input: []byte{0x00, 0x00, 0x00, 0x3D}, want: 61},
		{name: "one in second byte", input: []byte{0x00, 0x00, 0x01, 0x00}, want: 128},
		{name: "257", input: []byte{0x00, 0x00, 0x02, 0x01}, want: 257},
		{name: "max", input: []byte{0x7F, 0x7F, 0x7F, 0x7F}, want: types.MaxSynchsafe},
		{name: "high bits masked", input: []byte{0x80, 0x80, 0x80, 0xFF}, want: 0x7F},
		{name: "wrong length", input: []byte{0x01, 0x02}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeSynchsafe(tt.input); got != tt.want {
				t.Errorf("DecodeSynchsafe(% X) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeSynchsafe(t *testing.T) {
	b, err := EncodeSynchsafe(61)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != [4]byte{0, 0, 0, 61} {
		t.Errorf("EncodeSynchsafe(61) = % X, want 00 00 00 3D", b)
	}

	b, err = EncodeSynchsafe(128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != [4]byte{0, 0, 1, 0} {
		t.Errorf("EncodeSynchsafe(128) = % X, want 00 00 01 00", b)
	}

	if !IsSynchsafe(b[:]) {
		t.Errorf("encoded bytes % X have a high bit set", b)
	}
}

func TestEncodeSynchsafe_Overflow(t *testing.T) {
	_, err := EncodeSynchsafe(types.MaxSynchsafe + 1)
	if !errors.Is(err, types.ErrSynchsafeOverflow) {
		t.Errorf("expected ErrSynchsafeOverflow, got %v", err)
	}
}

func TestSynchsafe_RoundTrip(t *testing.T) {
	check := func(n uint32) {
		b, err := EncodeSynchsafe(n)
		if err != nil {
			t.Fatalf("EncodeSynchsafe(%d): %v", n, err)
		}
		if !IsSynchsafe(b[:]) {
			t.Fatalf("EncodeSynchsafe(%d) = % X has a high bit set", n, b)
		}
		if got := DecodeSynchsafe(b[:]); got != n {
			t.Fatalf("round trip %d: got %d", n, got)
		}
	}

	// Byte boundaries
	for _, n := range []uint32{0, 1, 127, 128, 129, 16383, 16384, 2097151, 2097152, types.MaxSynchsafe - 1, types.MaxSynchsafe} {
		check(n)
	}

	// Strided sweep of the full 28-bit range
	for n := uint32(0); n <= types.MaxSynchsafe; n += 4099 {
		check(n)
	}
}

func TestDecodeFrameSize_VersionGated(t *testing.T) {
	size := []byte{0x00, 0x00, 0x01, 0x00}

	tests := []struct {
		major byte
		want  uint32
	}{
		{major: 2, want: 256},
		{major: 3, want: 256},
		{major: 4, want: 128},
	}

	for _, tt := range tests {
		if got := DecodeFrameSize(size, tt.major); got != tt.want {
			t.Errorf("DecodeFrameSize(% X, v2.%d) = %d, want %d", size, tt.major, got, tt.want)
		}
	}
}

func TestDecodeFrameSize_NoSniffing(t *testing.T) {
	// Bytes that happen to be valid synchsafe are still raw in v2.3
	size := []byte{0x00, 0x00, 0x00, 0x7F}
	if got := DecodeFrameSize(size, 3); got != 127 {
		t.Errorf("v2.3 size = %d, want 127", got)
	}

	// A high bit in v2.3 is a large raw size, not a guess
	size = []byte{0x00, 0x00, 0x80, 0x00}
	if got := DecodeFrameSize(size, 3); got != 32768 {
		t.Errorf("v2.3 size = %d, want 32768", got)
	}
}
