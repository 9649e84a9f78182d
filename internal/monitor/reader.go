package monitor

import (
	"fmt"

	"github.com/dl/sermon/internal/device"
)

// Reader pulls chunks of bytes from a device stream. The returned
// slice is only valid until the next Read call; the formatter consumes
// it synchronously before the loop reads again.
type Reader struct {
	stream device.Stream
	buf    []byte
}

// NewReader creates a Reader over the given stream.
func NewReader(s device.Stream) *Reader {
	return &Reader{stream: s, buf: make([]byte, 1024)}
}

// Read returns the next chunk. A zero-length chunk with a nil error
// means no data yet, not failure; an error means the stream failed.
func (r *Reader) Read() ([]byte, error) {
	n, err := r.stream.Read(r.buf)
	if err != nil {
		return nil, fmt.Errorf("read device: %w", err)
	}
	return r.buf[:n], nil
}
