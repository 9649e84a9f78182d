package output

import (
	"bytes"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// fixedClock pins timestamps to a known instant for deterministic output.
func fixedClock() time.Time { return time.Unix(42, 0) }

// tsMarker is the plain rendering of the fixedClock timestamp.
const tsMarker = "        42.0000000 | "

// newTestSink builds a sink over in-memory buffers for the primary and
// log destinations.
func newTestSink() (*Sink, *bytes.Buffer, *bytes.Buffer) {
	primary := &bytes.Buffer{}
	logDest := &bytes.Buffer{}
	sink := NewSink(primary, logDest, log.New(io.Discard))
	return sink, primary, logDest
}

// errWriter fails every write, standing in for a log file that was
// closed underneath the sink.
type errWriter struct {
	calls int
}

func (w *errWriter) Write([]byte) (int, error) {
	w.calls++
	return 0, errors.New("stream closed")
}
