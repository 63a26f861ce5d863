package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/meshdeps/pkg/errors"
	"github.com/arthur-debert/meshdeps/pkg/logging"
)

// Environment variable names
const (
	// EnvPrefix prefixes every environment variable read as configuration
	EnvPrefix = "MESHDEPS_"

	// EnvConfigFile points at a user configuration file
	EnvConfigFile = "MESHDEPS_CONFIG"

	// EnvUser selects the user entry; read by the CLI, not by the loader
	EnvUser = "MESHDEPS_USER"

	// ConfigDirName is the directory under XDG_CONFIG_HOME
	ConfigDirName = "meshdeps"

	// ConfigFileName is the user configuration file name
	ConfigFileName = "config.toml"
)

// LoadOptions controls which layers Load reads
type LoadOptions struct {
	// ConfigFile is an explicit user configuration file. It must exist.
	ConfigFile string

	// SkipUserFile disables the MESHDEPS_CONFIG and XDG lookups. Ignored
	// when ConfigFile is set.
	SkipUserFile bool

	// Overrides are applied last, keyed by dotted path
	// (e.g. "users.PZwan.default.solver_root").
	Overrides map[string]interface{}
}

// Load builds the configuration from every layer
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	// 2. User file
	userFile, err := resolveUserFile(opts)
	if err != nil {
		return nil, err
	}
	if userFile != "" {
		logger.Debug().Str("path", userFile).Msg("Loading user configuration")
		if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load configuration from %s", userFile).
				WithDetail("path", userFile)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("users", cfg.KnownUsers()).
		Str("defaultUser", cfg.DefaultUser).
		Msg("Configuration loaded")

	return cfg, nil
}

// Default returns the embedded configuration only
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}
	return unmarshal(k)
}

// UserConfigPath returns the XDG location of the user configuration file
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, ConfigDirName, ConfigFileName)
}

func resolveUserFile(opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "configuration file %s is not readable", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}
	if opts.SkipUserFile {
		return "", nil
	}

	if path := os.Getenv(EnvConfigFile); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "%s points at an unreadable file", EnvConfigFile).
				WithDetail("path", path)
		}
		return path, nil
	}

	if path := UserConfigPath(); fileExists(path) {
		return path, nil
	}
	return "", nil
}

// envKey maps MESHDEPS_LAYOUT__MESHES to layout.meshes. The user name in
// MESHDEPS_USERS__<name>__... keeps its case since user lookup is exact.
// Variables that the CLI reads itself are skipped.
func envKey(s string) string {
	if s == EnvConfigFile || s == EnvUser {
		return ""
	}
	parts := strings.Split(strings.TrimPrefix(s, EnvPrefix), "__")
	for i, part := range parts {
		if i == 1 && parts[0] == "USERS" {
			continue
		}
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				trimSpaceHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	postProcessConfig(&cfg)
	return &cfg, nil
}

// trimSpaceHookFunc strips surrounding whitespace from string values; paths
// pasted into environment variables often carry a trailing newline.
func trimSpaceHookFunc() mapstructure.DecodeHookFuncType {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() == reflect.String && t.Kind() == reflect.String {
			return strings.TrimSpace(data.(string)), nil
		}
		return data, nil
	}
}

func postProcessConfig(cfg *Config) {
	if cfg.Users == nil {
		cfg.Users = make(map[string]User)
	}
	cfg.Layout.Meshes = withTrailingSlash(cfg.Layout.Meshes)
	cfg.Layout.Cases = withTrailingSlash(cfg.Layout.Cases)
	cfg.Layout.ControlFiles = withTrailingSlash(cfg.Layout.ControlFiles)
}

func withTrailingSlash(dir string) string {
	if dir == "" || strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + "/"
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
