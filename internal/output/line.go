package output

// lineFormatter frames the stream into lines, leading each one with a
// timestamp marker when enabled.
//
// The marker after a line feed is emitted eagerly, right behind the
// terminator, before any data for the next line has arrived. That way
// an idle connection still shows when the last line ended.
type lineFormatter struct {
	base
	atLineStart bool // true until the first character of the session is written
}

func (f *lineFormatter) Write(chunk []byte) error {
	for i := range chunk {
		if f.atLineStart {
			if err := f.writeTimestamp(); err != nil {
				return err
			}
			f.atLineStart = false
		}
		if err := f.sink.Write(string(chunk[i : i+1])); err != nil {
			return err
		}
		if chunk[i] == '\n' {
			if err := f.writeTimestamp(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *lineFormatter) Flush() error { return nil }

var _ Formatter = (*lineFormatter)(nil)
