package version

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
)

const (
	versionDevel   = "devel"
	versionUnknown = "unknown"
)

// version is set via ldflags at build time.
// falls back to debug.ReadBuildInfo for go install.
var version = versionDevel

var once sync.Once

func Get() string {
	once.Do(func() {
		if version != versionDevel {
			return
		}
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		if v := info.Main.Version; v != "" && v != "("+versionDevel+")" {
			version = v
		}
	})
	return version
}

// IsDevelopment returns true for versions that should never be reported as outdated.
func IsDevelopment(v string) bool {
	return v == versionDevel || v == versionUnknown || v == "" ||
		strings.Contains(v, "dirty") ||
		strings.Contains(v, "-0.")
}

// IsNewer reports whether latest is a higher semver than current.
// Development builds are never considered outdated.
func IsNewer(current, latest string) bool {
	if IsDevelopment(current) {
		return false
	}
	cur := parse(current)
	lat := parse(latest)
	for i := range cur {
		if lat[i] != cur[i] {
			return lat[i] > cur[i]
		}
	}
	return false
}

// IsHomebrew reports whether the running binary lives in a Homebrew Cellar.
func IsHomebrew() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return strings.Contains(filepath.ToSlash(exe), "/Cellar/")
}

// parse extracts major, minor and patch. Missing or malformed parts are zero.
func parse(v string) [3]int {
	v = strings.TrimPrefix(v, "v")
	if idx := strings.IndexAny(v, "-+"); idx >= 0 {
		v = v[:idx]
	}
	var out [3]int
	for i, part := range strings.SplitN(v, ".", 3) {
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		out[i] = n
	}
	return out
}
