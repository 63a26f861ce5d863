package config

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/meshdeps/pkg/errors"
)

// GenerateConfigContent returns the embedded defaults with every value
// commented out, ready to be edited into a user configuration file
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// MarshalTOML renders cfg as TOML. Used to show the effective configuration
// after all layers have been applied.
func MarshalTOML(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return string(data), nil
}

// commentOutConfigValues comments out all assignment lines. Comments, blank
// lines and section headers are kept as they are.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
