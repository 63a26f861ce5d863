package paths

import (
	"runtime"
	"strings"

	"github.com/arthur-debert/meshdeps/pkg/errors"
)

// OSFamily selects which entry of a user's path table applies
type OSFamily int

const (
	// OSOther is every platform without its own entry
	OSOther OSFamily = iota
	// OSDarwin is macOS
	OSDarwin
)

// String returns the configuration key of the family
func (o OSFamily) String() string {
	switch o {
	case OSDarwin:
		return "darwin"
	default:
		return "default"
	}
}

// DetectOS returns the family of the running system
func DetectOS() OSFamily {
	return osFamilyFor(runtime.GOOS)
}

func osFamilyFor(goos string) OSFamily {
	if goos == "darwin" {
		return OSDarwin
	}
	return OSOther
}

// ParseOS parses the --os flag. "auto" and "" detect the running system.
func ParseOS(s string) (OSFamily, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectOS(), nil
	case "darwin", "macos":
		return OSDarwin, nil
	case "other", "default", "linux":
		return OSOther, nil
	default:
		return OSOther, errors.Newf(errors.ErrInvalidInput, "unknown OS family: %s", s).
			WithDetail("supported", []string{"auto", "darwin", "other"})
	}
}
