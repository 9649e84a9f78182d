// Package monitor drives the read-format-write loop and the
// connection lifecycle around it.
package monitor

import "github.com/dl/sermon/internal/output"

// Monitor runs one session: it reads chunks from the device and hands
// them to the formatter until the stream fails.
type Monitor struct {
	reader *Reader
	fmtr   output.Formatter
}

// New creates a Monitor for one session.
func New(reader *Reader, fmtr output.Formatter) *Monitor {
	return &Monitor{reader: reader, fmtr: fmtr}
}

// Run loops until a read or write fails and returns that failure.
// Empty chunks are a valid "no data yet" signal and keep the loop
// running without invoking the formatter.
func (m *Monitor) Run() error {
	for {
		chunk, err := m.reader.Read()
		if err != nil {
			return err
		}
		if len(chunk) == 0 {
			continue
		}
		if err := m.fmtr.Write(chunk); err != nil {
			return err
		}
	}
}
