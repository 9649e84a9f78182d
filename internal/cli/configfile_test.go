package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfigArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sermonrc")
	content := "# defaults for the bench setup\n-b\n115200\n\n--persist\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SERMON_CONFIG_PATH", path)

	got := LoadConfigArgs()
	want := []string{"-b", "115200", "--persist"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLoadConfigArgs_MissingFile(t *testing.T) {
	t.Setenv("SERMON_CONFIG_PATH", filepath.Join(t.TempDir(), "nope"))

	if got := LoadConfigArgs(); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
