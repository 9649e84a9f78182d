package cli

import "testing"

func validConfig() Config {
	return Config{
		Port:     "/dev/ttyACM0",
		Baud:     9600,
		Format:   "raw",
		HexBytes: 16,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"hex format", func(c *Config) { c.Format = "hex" }, false},
		{"unknown format", func(c *Config) { c.Format = "json" }, true},
		{"zero baud", func(c *Config) { c.Baud = 0 }, true},
		{"negative baud", func(c *Config) { c.Baud = -9600 }, true},
		{"zero hex width", func(c *Config) { c.HexBytes = 0 }, true},
		{"empty port", func(c *Config) { c.Port = "" }, true},
		{"empty port with list", func(c *Config) { c.Port = ""; c.List = true }, false},
	}

	for _, tt := range tests {
		cfg := validConfig()
		tt.mutate(&cfg)
		err := cfg.Validate()
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"auto", ColorAuto, false},
		{"always", ColorAlways, false},
		{"on", ColorAlways, false},
		{"never", ColorNever, false},
		{"off", ColorNever, false},
		{"rainbow", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseColorMode(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColorMode(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColorMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
