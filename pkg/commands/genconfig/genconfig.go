package genconfig

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/arthur-debert/meshdeps/pkg/config"
	"github.com/arthur-debert/meshdeps/pkg/errors"
	"github.com/arthur-debert/meshdeps/pkg/logging"
	"github.com/arthur-debert/meshdeps/pkg/types"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// Write saves the content to TargetPath instead of only returning it
	Write bool
	// TargetPath defaults to the user config file
	TargetPath string
	// Effective, when set, is rendered instead of the commented defaults
	Effective *config.Config
	// FileSystem defaults to the OS filesystem
	FileSystem afero.Fs
}

// GenConfig outputs or writes a configuration file
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	content := config.GenerateConfigContent()
	if opts.Effective != nil {
		var err error
		content, err = config.MarshalTOML(opts.Effective)
		if err != nil {
			return nil, err
		}
	}

	result := &types.GenConfigResult{
		ConfigContent: content,
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	targetPath := opts.TargetPath
	if targetPath == "" {
		targetPath = config.UserConfigPath()
	}

	if _, err := fsys.Stat(targetPath); err == nil {
		logger.Warn().Str("path", targetPath).Msg("Config file already exists, skipping")
		return result, nil
	}

	dir := filepath.Dir(targetPath)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrConfigLoad, "failed to create directory %s", dir)
	}
	if err := afero.WriteFile(fsys, targetPath, []byte(content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrConfigLoad, "failed to write config to %s", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)

	return result, nil
}
