package output

import (
	"fmt"
	"time"
)

// Format selects how device bytes are rendered.
type Format int

const (
	FormatRaw  Format = iota // decoded text, no annotation
	FormatLine               // line-framed with optional timestamps
	FormatHex                // fixed-width hex dump
)

// DefaultHexWidth is the number of bytes per hex row when none is configured.
const DefaultHexWidth = 16

// ParseFormat converts a format name from the CLI into a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "raw":
		return FormatRaw, nil
	case "line":
		return FormatLine, nil
	case "hex":
		return FormatHex, nil
	default:
		return FormatRaw, fmt.Errorf("unknown format %q (expected raw, line or hex)", s)
	}
}

// Config holds the per-session output options. It is fixed when the
// session starts and shared by all formatter variants.
type Config struct {
	AddTimestamp bool
	Color        bool
	ShowASCII    bool // hex only
	HexWidth     int  // hex only, bytes per row

	// Now overrides the timestamp clock; nil means time.Now.
	Now func() time.Time
}

// Formatter renders device bytes to the sink in one of the output
// formats. Write may be called any number of times with successive
// chunks. Flush must be called when the session ends, on every exit
// path, so a trailing partial hex row is never lost; calling it more
// than once is harmless.
type Formatter interface {
	Write(chunk []byte) error
	Flush() error
}

// New creates the formatter for the given format. The variant set is
// closed: callers select one of the Format constants and get back the
// matching implementation.
func New(format Format, cfg Config, sink *Sink) Formatter {
	styles := NoStyles()
	if cfg.Color {
		styles = NewStyles()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	b := base{sink: sink, cfg: cfg, styles: styles, now: now}

	switch format {
	case FormatLine:
		return &lineFormatter{base: b, atLineStart: true}
	case FormatHex:
		width := cfg.HexWidth
		if width <= 0 {
			width = DefaultHexWidth
		}
		return &hexFormatter{base: b, width: width}
	default:
		return &rawFormatter{base: b}
	}
}

// base carries the state shared by all formatter variants.
type base struct {
	sink   *Sink
	cfg    Config
	styles Styles
	now    func() time.Time
}

// writeTimestamp emits the seconds-since-epoch marker that leads a
// logical output unit. A no-op unless timestamps are enabled.
func (b *base) writeTimestamp() error {
	if !b.cfg.AddTimestamp {
		return nil
	}
	num := fmt.Sprintf("%18.7f", float64(b.now().UnixNano())/1e9)
	plain := num + " | "
	if !b.cfg.Color {
		return b.sink.WriteStyled(plain, plain)
	}
	styled := b.styles.Timestamp.Render(num) + " " + b.styles.Separator.Render("|") + " "
	return b.sink.WriteStyled(styled, plain)
}

// writeMeta emits an annotated metadata line, e.g. the hex ASCII
// gutter. The log mirror always receives the plain "| " form.
func (b *base) writeMeta(content string) error {
	plain := "| " + content + "\n"
	if !b.cfg.Color {
		return b.sink.WriteStyled(plain, plain)
	}
	styled := b.styles.Separator.Render("| ") + b.styles.Meta.Render(content) + "\n"
	return b.sink.WriteStyled(styled, plain)
}
