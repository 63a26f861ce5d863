package meshdeps

import (
	"errors"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/meshdeps/internal/version"
	"github.com/arthur-debert/meshdeps/pkg/cobrax/topics"
	"github.com/arthur-debert/meshdeps/pkg/logging"
	"github.com/arthur-debert/meshdeps/pkg/ui"
)

// Command groups
const (
	groupCore = "core"
	groupInfo = "info"
	groupMisc = "misc"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := newGlobalOptions()

	rootCmd := &cobra.Command{
		Use:     logging.AppName,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerWithWriter(opts.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&opts.user, "user", "u", "", MsgFlagUser)
	flags.StringVar(&opts.osName, "os", opts.osName, MsgFlagOS)
	flags.StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)
	flags.StringVar(&opts.solverRoot, "solver-root", "", MsgFlagSolverRoot)
	flags.StringVarP(&opts.format, "format", "f", opts.format, MsgFlagFormat)

	_ = rootCmd.RegisterFlagCompletionFunc("os", fixedCompletion("auto", "darwin", "other"))
	_ = rootCmd.RegisterFlagCompletionFunc("format", fixedCompletion("auto", "term", "text", "json", "yaml"))
	_ = rootCmd.RegisterFlagCompletionFunc("user", userCompletion(opts))

	rootCmd.AddGroup(
		&cobra.Group{ID: groupCore, Title: MsgGroupCore},
		&cobra.Group{ID: groupInfo, Title: MsgGroupInfo},
		&cobra.Group{ID: groupMisc, Title: MsgGroupMisc},
	)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newResolveCmd(opts))
	rootCmd.AddCommand(newDepsCmd(opts))
	rootCmd.AddCommand(newOutputsCmd(opts))
	rootCmd.AddCommand(newCatalogCmd(opts))
	rootCmd.AddCommand(newPathsCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	tm, err := topics.InitializeWithOptions(rootCmd, topicsFS(), topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	})
	if err == nil {
		rootCmd.AddCommand(newTopicsCmd(tm))
		rootCmd.SetHelpCommandGroupID(groupMisc)
	}

	return rootCmd
}

// Run executes the CLI with args and returns the process exit code. Errors
// are rendered on stderr in the selected format.
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	format, _ := rootCmd.PersistentFlags().GetString("format")
	renderError(format, stderr, err)
	return 1
}

func renderError(format string, w io.Writer, err error) {
	f, parseErr := ui.ParseFormat(format)
	if parseErr != nil {
		f = ui.FormatText
	}

	r, rerr := ui.NewRenderer(f, w)
	if rerr != nil {
		r, _ = ui.NewRenderer(ui.FormatText, w)
	}
	_ = r.RenderError(err)
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

func userCompletion(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		cfg, err := opts.loadConfig()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return cfg.KnownUsers(), cobra.ShellCompDirectiveNoFileComp
	}
}
