package network

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// trickleTransport accepts at most chunk bytes per Write call.
type trickleTransport struct {
	written  bytes.Buffer
	chunk    int
	writeErr error
	errAfter int // writes before writeErr fires; -1 disables
}

func (s *trickleTransport) Write(p []byte) (int, error) {
	if s.writeErr != nil && s.errAfter == 0 {
		return 0, s.writeErr
	}
	if s.errAfter > 0 {
		s.errAfter--
	}
	n := len(p)
	if s.chunk < 0 {
		n = 0
	} else if s.chunk > 0 && n > s.chunk {
		n = s.chunk
	}
	s.written.Write(p[:n])
	return n, nil
}

func (s *trickleTransport) Read(p []byte) (int, error) {
	return 0, io.EOF
}

func (s *trickleTransport) Close() error {
	return nil
}

func TestFullWriteAdapter_ReassemblesPartialWrites(t *testing.T) {
	under := &trickleTransport{chunk: 1, errAfter: -1}
	adapter := NewFullWriteAdapter(under)

	payload := []byte{0xFF, 0x01, 0x02, 0x03, 0x04}
	n, err := adapter.Write(payload)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if n != len(payload) {
		t.Fatalf("expected %d bytes written, got %d", len(payload), n)
	}
	if !bytes.Equal(under.written.Bytes(), payload) {
		t.Fatalf("payload reassembled wrong: %x", under.written.Bytes())
	}
}

func TestFullWriteAdapter_PropagatesWriteError(t *testing.T) {
	under := &trickleTransport{chunk: 2, writeErr: errors.New("reset by peer"), errAfter: 1}
	adapter := NewFullWriteAdapter(under)

	n, err := adapter.Write([]byte{1, 2, 3, 4, 5, 6})
	if err == nil {
		t.Fatal("expected an error")
	}
	if n != 2 {
		t.Fatalf("expected 2 bytes written before the error, got %d", n)
	}
}

func TestFullWriteAdapter_ZeroByteWriterIsShortWrite(t *testing.T) {
	under := &trickleTransport{chunk: -1, errAfter: -1} // writes nothing, returns no error
	adapter := NewFullWriteAdapter(under)

	_, err := adapter.Write([]byte{1})
	if !errors.Is(err, io.ErrShortWrite) {
		t.Fatalf("expected io.ErrShortWrite, got %v", err)
	}
}
