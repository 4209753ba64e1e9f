package network

import (
	"io"

	"labbot/application"
)

// FullWriteAdapter turns every Write into one logical send: it loops until
// the whole buffer is on the wire, so a partial write at the socket layer
// never splits a protocol message.
type FullWriteAdapter struct {
	adapter application.Transport
}

func NewFullWriteAdapter(under application.Transport) application.Transport {
	return &FullWriteAdapter{
		adapter: under,
	}
}

func (a *FullWriteAdapter) Write(data []byte) (int, error) {
	written := 0
	for written < len(data) {
		n, err := a.adapter.Write(data[written:])
		if n > 0 {
			written += n
		}
		if err != nil {
			return written, err
		}
		if n == 0 {
			return written, io.ErrShortWrite
		}
	}
	return written, nil
}

func (a *FullWriteAdapter) Read(buffer []byte) (int, error) {
	return a.adapter.Read(buffer)
}

func (a *FullWriteAdapter) Close() error {
	return a.adapter.Close()
}
