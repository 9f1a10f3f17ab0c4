package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLog(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Log()
	if err != nil {
		t.Fatalf("Log() unexpected error: %v", err)
	}
	if want := filepath.Join(home, ".config", "tock", "tock.log"); got != want {
		t.Errorf("Log() = %q, want %q", got, want)
	}
}

func TestEnsureDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := EnsureDir()
	if err != nil {
		t.Fatalf("EnsureDir() unexpected error: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat(%q) unexpected error: %v", dir, err)
	}
	if !info.IsDir() {
		t.Errorf("%q is not a directory", dir)
	}
}

func TestLogFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := LogFile("/var/log/tock.log")
	if err != nil {
		t.Fatalf("LogFile(override) unexpected error: %v", err)
	}
	if got != "/var/log/tock.log" {
		t.Errorf("LogFile(override) = %q, want override", got)
	}
	if _, err := os.Stat(filepath.Join(home, ".config")); !os.IsNotExist(err) {
		t.Errorf("LogFile(override) created the config directory")
	}

	got, err = LogFile("")
	if err != nil {
		t.Fatalf("LogFile(\"\") unexpected error: %v", err)
	}
	if want := filepath.Join(home, ".config", "tock", "tock.log"); got != want {
		t.Errorf("LogFile(\"\") = %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Dir(got)); err != nil {
		t.Errorf("config directory missing: %v", err)
	}
}
