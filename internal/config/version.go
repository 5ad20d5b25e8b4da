package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrVersionTooOld means the running binary is older than min_version.
var ErrVersionTooOld = errors.New("featgen is older than the configured min_version")

// CheckMinVersion fails when current is older than minVersion. Builds without a
// release version ("dev" or anything unparsable) are never rejected.
func CheckMinVersion(minVersion, current string) error {
	if minVersion == "" {
		return nil
	}
	cv, err := parseSemver(current)
	if err != nil {
		return nil
	}
	mv, err := parseSemver(minVersion)
	if err != nil {
		return fmt.Errorf("%w: %s %q: %w", ErrInvalid, KeyMinVersion, minVersion, err)
	}
	if cv.LessThan(mv) {
		return fmt.Errorf("%w: running %s, need %s", ErrVersionTooOld, cv, mv)
	}
	return nil
}

func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
