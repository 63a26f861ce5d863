package meshdeps

import (
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/arthur-debert/meshdeps/pkg/config"
	"github.com/arthur-debert/meshdeps/pkg/filesystem"
	"github.com/arthur-debert/meshdeps/pkg/logging"
	"github.com/arthur-debert/meshdeps/pkg/paths"
	"github.com/arthur-debert/meshdeps/pkg/ui"
)

// LocalUser is the user --solver-root resolves as when no user is selected
const LocalUser = "local"

// globalOptions holds the persistent flags
type globalOptions struct {
	verbosity  int
	user       string
	osName     string
	configFile string
	solverRoot string
	format     string

	fs afero.Fs
}

func newGlobalOptions() *globalOptions {
	return &globalOptions{
		osName: "auto",
		format: ui.FormatAuto.String(),
		fs:     filesystem.NewOS(),
	}
}

// userName is --user, else $MESHDEPS_USER, else the configured default
func (o *globalOptions) userName(cfg *config.Config) string {
	if o.user != "" {
		return o.user
	}
	if env := os.Getenv(config.EnvUser); env != "" {
		return env
	}
	return cfg.DefaultUser
}

// loadConfig loads every configuration layer. --solver-root becomes an
// override of the selected user's solver root.
func (o *globalOptions) loadConfig() (*config.Config, error) {
	loadOpts := config.LoadOptions{ConfigFile: o.configFile}

	cfg, err := config.Load(loadOpts)
	if err != nil || o.solverRoot == "" {
		return cfg, err
	}

	user := o.userName(cfg)
	if user == "" {
		user = LocalUser
	}

	loadOpts.Overrides = map[string]interface{}{"default_user": user}
	loadOpts.Overrides["users."+user+".default.solver_root"] = o.solverRoot
	if existing, ok := cfg.Users[user]; ok && !existing.Darwin.IsZero() {
		loadOpts.Overrides["users."+user+".darwin.solver_root"] = o.solverRoot
	}

	logger := logging.GetLogger("cmd")
	logger.Debug().
		Str("user", user).
		Str("solverRoot", o.solverRoot).
		Msg("Overriding solver root")

	return config.Load(loadOpts)
}

// resolvePaths loads the configuration and resolves the path set
func (o *globalOptions) resolvePaths() (paths.Paths, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	osFamily, err := paths.ParseOS(o.osName)
	if err != nil {
		return nil, err
	}

	return paths.New(cfg, paths.Options{
		User: o.userName(cfg),
		OS:   osFamily,
	})
}

// renderer builds the renderer for --format writing to w
func (o *globalOptions) renderer(w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, w)
}
