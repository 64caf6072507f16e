package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// supportedVersions is the range of config schema versions this build reads.
const supportedVersions = ">= 1.0.0, < 2.0.0"

// ErrUnsupportedVersion indicates a config file written for an incompatible schema.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// CheckVersion verifies that v falls within the supported schema range.
// An empty version is treated as CurrentVersion.
func CheckVersion(v string) error {
	if v == "" {
		return nil
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedVersion, v, supportedVersions)
	}
	return nil
}
