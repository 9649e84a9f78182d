package output

import "strings"

// rawFormatter passes decoded text straight through to the sink.
// Invalid UTF-8 sequences are dropped, never fatal.
type rawFormatter struct {
	base
}

func (f *rawFormatter) Write(chunk []byte) error {
	return f.sink.Write(strings.ToValidUTF8(string(chunk), ""))
}

func (f *rawFormatter) Flush() error { return nil }

var _ Formatter = (*rawFormatter)(nil)
