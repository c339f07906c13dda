package id3v2

import (
	"bytes"
	"encoding/binary"
	"testing"

	binutil "github.com/simonhull/id3chapters/internal/binary"
	"github.com/simonhull/id3chapters/internal/text"
)

// frameSize encodes a frame size field the way the given version stores it.
func frameSize(major byte, n int) []byte {
	if major == 4 {
		b, err := binutil.EncodeSynchsafe(uint32(n))
		if err != nil {
			panic(err)
		}
		return b[:]
	}
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(n))
	return b
}

// frame builds a complete frame: [id][size][flags][body].
func frame(major byte, id string, body []byte) []byte {
	return frameWithSize(major, id, len(body), body)
}

// frameWithSize builds a frame whose declared size differs from its body.
func frameWithSize(major byte, id string, size int, body []byte) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString(id)
	buf.Write(frameSize(major, size))
	buf.Write([]byte{0x00, 0x00})
	buf.Write(body)
	return buf.Bytes()
}

// textFrame builds a text frame body: [encoding][text].
func textFrame(major byte, id string, enc byte, text []byte) []byte {
	return frame(major, id, append([]byte{enc}, text...))
}

// chapBody builds a CHAP frame body followed by any sub-frames.
func chapBody(elementID string, start, end uint32, subframes ...[]byte) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString(elementID)
	buf.WriteByte(0)
	binary.Write(buf, binary.BigEndian, start)
	binary.Write(buf, binary.BigEndian, end)
	binary.Write(buf, binary.BigEndian, uint32(0xFFFFFFFF))
	binary.Write(buf, binary.BigEndian, uint32(0xFFFFFFFF))
	for _, sf := range subframes {
		buf.Write(sf)
	}
	return buf.Bytes()
}

// chap builds a CHAP frame with a TIT2 title in ISO-8859-1.
func chap(major byte, elementID string, start, end uint32, title string) []byte {
	return frame(major, "CHAP", chapBody(elementID, start, end, textFrame(major, "TIT2", 0x00, []byte(title))))
}

// tag builds a complete tag: header, frames, then padding zero bytes.
func tag(major, flags byte, padding int, frames ...[]byte) []byte {
	body := &bytes.Buffer{}
	for _, f := range frames {
		body.Write(f)
	}
	body.Write(make([]byte, padding))

	size, err := binutil.EncodeSynchsafe(uint32(body.Len()))
	if err != nil {
		panic(err)
	}

	buf := &bytes.Buffer{}
	buf.WriteString("ID3")
	buf.Write([]byte{major, 0x00, flags})
	buf.Write(size[:])
	buf.Write(body.Bytes())
	return buf.Bytes()
}

func newStream(t *testing.T, data []byte) *binutil.Stream {
	t.Helper()
	s, err := binutil.NewStream(bytes.NewReader(data), "test.mp3")
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	return s
}

var testTable = NewTable(text.NewTranscoder(), 0)
