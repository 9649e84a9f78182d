// Package device wraps the serial port library behind the small stream
// contract the monitor consumes.
package device

import (
	"errors"
	"fmt"
	"io/fs"

	"go.bug.st/serial"
)

// ErrNotAvailable reports that the device is not present. This is the
// only open failure retried under wait-for-device; everything else is
// fatal immediately.
var ErrNotAvailable = errors.New("device not available")

// Stream is a connected device the monitor reads from. Read blocks
// until data arrives or the stream fails; Close releases the device.
type Stream interface {
	Read(p []byte) (n int, err error)
	Close() error
}

// Opener opens a device stream. The connection manager takes one so
// tests can substitute a fake device.
type Opener func(port string, baud int) (Stream, error)

// Open opens a serial port in 8N1 mode at the given baud rate.
func Open(port string, baud int) (Stream, error) {
	s, err := serial.Open(port, &serial.Mode{BaudRate: baud})
	if err != nil {
		if notPresent(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotAvailable, port)
		}
		return nil, fmt.Errorf("open %s: %w", port, err)
	}
	return s, nil
}

// notPresent reports whether an open failure means the device node
// does not exist, as opposed to being busy, denied or misconfigured.
func notPresent(err error) bool {
	var portErr *serial.PortError
	if errors.As(err, &portErr) && portErr.Code() == serial.PortNotFound {
		return true
	}
	return errors.Is(err, fs.ErrNotExist)
}
