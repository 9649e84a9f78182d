package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

type flusher interface {
	Flush() error
}

// Sink writes formatted text to the primary destination and mirrors it,
// uncolored, to an optional log destination. Every write is flushed
// before returning so output survives an abrupt disconnect.
type Sink struct {
	primary io.Writer
	logDest io.Writer
	logger  *log.Logger
	logDead bool
}

// NewSink creates a Sink. logDest may be nil to disable mirroring.
func NewSink(primary, logDest io.Writer, logger *log.Logger) *Sink {
	return &Sink{primary: primary, logDest: logDest, logger: logger}
}

// Write sends text to the primary destination and mirrors the same text
// to the log destination.
func (s *Sink) Write(text string) error {
	return s.WriteStyled(text, text)
}

// WriteStyled sends the styled text to the primary destination and the
// plain rendition to the log destination. A primary write failure is
// returned to the caller; a mirror failure only produces a warning.
func (s *Sink) WriteStyled(styled, plain string) error {
	if _, err := io.WriteString(s.primary, styled); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if f, ok := s.primary.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
	}
	s.mirror(plain)
	return nil
}

// mirror writes text to the log destination, if one is configured. The
// first failure is warned and disables further mirroring; primary
// output is never interrupted by the log.
func (s *Sink) mirror(text string) {
	if s.logDest == nil || s.logDead {
		return
	}
	if _, err := io.WriteString(s.logDest, text); err != nil {
		s.logDead = true
		s.logger.Warn("log mirror failed, log output disabled", "err", err)
		return
	}
	if f, ok := s.logDest.(flusher); ok {
		if err := f.Flush(); err != nil {
			s.logDead = true
			s.logger.Warn("log mirror flush failed, log output disabled", "err", err)
		}
	}
}
