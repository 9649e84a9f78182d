package monitor

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readStep scripts one Read call on a fakeStream.
type readStep struct {
	data []byte
	err  error
}

type fakeStream struct {
	reads  []readStep
	idx    int
	closed bool
}

func (s *fakeStream) Read(p []byte) (int, error) {
	if s.closed {
		return 0, errors.New("stream closed")
	}
	if s.idx >= len(s.reads) {
		return 0, io.EOF
	}
	step := s.reads[s.idx]
	s.idx++
	if step.err != nil {
		return 0, step.err
	}
	return copy(p, step.data), nil
}

func (s *fakeStream) Close() error {
	s.closed = true
	return nil
}

// recordingFormatter captures what the monitor loop hands to it.
type recordingFormatter struct {
	chunks  []string
	flushes int
	err     error
}

func (f *recordingFormatter) Write(chunk []byte) error {
	if f.err != nil {
		return f.err
	}
	f.chunks = append(f.chunks, string(chunk))
	return nil
}

func (f *recordingFormatter) Flush() error {
	f.flushes++
	return nil
}

func TestMonitor_StopsOnStreamFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("device unplugged")
	stream := &fakeStream{reads: []readStep{
		{data: []byte("AB")},
		{data: nil}, // empty chunk: no data yet, loop continues
		{data: []byte("C")},
		{err: boom},
	}}
	fmtr := &recordingFormatter{}

	err := New(NewReader(stream), fmtr).Run()

	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"AB", "C"}, fmtr.chunks, "empty chunks must not reach the formatter")
}

func TestMonitor_StopsOnWriteFailure(t *testing.T) {
	t.Parallel()

	writeErr := errors.New("sink failed")
	stream := &fakeStream{reads: []readStep{{data: []byte("X")}}}
	fmtr := &recordingFormatter{err: writeErr}

	err := New(NewReader(stream), fmtr).Run()

	require.ErrorIs(t, err, writeErr)
}

func TestReader_WrapsStreamError(t *testing.T) {
	t.Parallel()

	boom := errors.New("gone")
	r := NewReader(&fakeStream{reads: []readStep{{err: boom}}})

	_, err := r.Read()

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "read device")
}

func TestReader_EmptyChunkIsNotAnError(t *testing.T) {
	t.Parallel()

	r := NewReader(&fakeStream{reads: []readStep{{data: nil}}})

	chunk, err := r.Read()

	require.NoError(t, err)
	assert.Empty(t, chunk)
}
