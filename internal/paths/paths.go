package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dotConfig = ".config"
	appName   = "tock"
	logName   = "tock.log"
)

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dotConfig, appName), nil
}

func EnsureDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create %s directory: %w", appName, err)
	}
	return dir, nil
}

func Log() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logName), nil
}

// LogFile resolves where logs are appended. A non-empty override wins;
// otherwise the config directory is created and its tock.log is used.
func LogFile(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if _, err := EnsureDir(); err != nil {
		return "", err
	}
	return Log()
}
