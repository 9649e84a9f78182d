package cli

import (
	"fmt"

	"github.com/dl/sermon/internal/output"
)

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

// ParseColorMode converts a --color flag value into a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto":
		return ColorAuto, nil
	case "always", "on":
		return ColorAlways, nil
	case "never", "off":
		return ColorNever, nil
	default:
		return ColorNever, fmt.Errorf("unknown color mode %q (expected auto, always or never)", s)
	}
}

// Config holds all configuration for one sermon run.
type Config struct {
	Port      string
	Baud      int
	Format    string
	LogPath   string
	Timestamp bool
	Color     ColorMode
	ShowASCII bool
	HexBytes  int
	Wait      bool
	Persist   bool
	Quiet     bool
	List      bool
	ListJSON  bool
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	if _, err := output.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Baud <= 0 {
		return fmt.Errorf("invalid baudrate: %d", c.Baud)
	}
	if c.HexBytes < 1 {
		return fmt.Errorf("invalid hex row width: %d", c.HexBytes)
	}
	if !c.List && !c.ListJSON && c.Port == "" {
		return fmt.Errorf("no serial port specified")
	}
	return nil
}
