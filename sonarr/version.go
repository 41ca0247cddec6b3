package sonarr

import (
	"strings"

	"github.com/blang/semver"
)

// SemVer parses the reported server version. Sonarr reports four-segment
// versions like "3.0.10.1567"; the build segment is dropped before parsing.
func (s SystemStatus) SemVer() (semver.Version, error) {
	version := s.Version
	if parts := strings.Split(version, "."); len(parts) > 3 {
		version = strings.Join(parts[:3], ".")
	}
	return semver.ParseTolerant(version)
}

// AtLeast reports whether the server runs the given version or newer.
// Unparseable versions on either side report false.
func (s SystemStatus) AtLeast(minimum string) bool {
	current, err := s.SemVer()
	if err != nil {
		return false
	}
	want, err := semver.ParseTolerant(minimum)
	if err != nil {
		return false
	}
	return current.GTE(want)
}
