package output

import (
	"fmt"
	"strings"
)

// hexFormatter renders the stream as a fixed-width hex dump, one
// timestamp per row, with an optional ASCII gutter per row.
type hexFormatter struct {
	base
	row     []byte // bytes of the current row, kept for the ASCII gutter
	count   int    // bytes written in the current row, 0..width
	width   int
	flushed bool
}

func (f *hexFormatter) Write(chunk []byte) error {
	for _, c := range chunk {
		if f.count == 0 {
			if err := f.writeTimestamp(); err != nil {
				return err
			}
		}
		if err := f.sink.Write(fmt.Sprintf("%02X ", c)); err != nil {
			return err
		}
		if f.cfg.ShowASCII {
			f.row = append(f.row, c)
		}
		f.count++
		if f.count == f.width {
			if err := f.endRow(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush writes out a trailing partial row so no bytes are silently
// lost when the session ends. It runs at most once per formatter.
func (f *hexFormatter) Flush() error {
	if f.flushed {
		return nil
	}
	f.flushed = true
	if f.count == 0 {
		return nil
	}
	return f.endRow()
}

// endRow terminates the current row: pad a short row, emit the ASCII
// gutter (or a bare line break), and reset the row state.
func (f *hexFormatter) endRow() error {
	if f.cfg.ShowASCII {
		if f.count < f.width {
			if err := f.sink.Write(strings.Repeat("   ", f.width-f.count)); err != nil {
				return err
			}
		}
		if err := f.writeMeta(gutter(f.row)); err != nil {
			return err
		}
		f.row = f.row[:0]
	} else {
		if err := f.sink.Write("\n"); err != nil {
			return err
		}
	}
	f.count = 0
	return nil
}

// gutter renders the ASCII column for one row. Bytes outside printable
// ASCII are dropped, not substituted, so CR and LF never break the row.
func gutter(row []byte) string {
	var b strings.Builder
	b.Grow(len(row))
	for _, c := range row {
		if c < 0x20 || c > 0x7e {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

var _ Formatter = (*hexFormatter)(nil)
