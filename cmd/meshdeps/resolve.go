package meshdeps

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/meshdeps/pkg/catalog"
	"github.com/arthur-debert/meshdeps/pkg/commands"
	"github.com/arthur-debert/meshdeps/pkg/logging"
)

func newResolveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "resolve <family> <mesh-name>...",
		Short:             MsgResolveShort,
		Long:              MsgResolveLong,
		Example:           MsgResolveExample,
		GroupID:           groupCore,
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: meshArgsCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolveOpts, err := opts.resolveOptions(args)
			if err != nil {
				return err
			}

			result, err := commands.Resolve(resolveOpts)
			if err != nil {
				return err
			}

			logger := logging.GetLogger("cmd.resolve")
			logger.Info().
				Str("family", result.VarName).
				Int("variants", len(result.Variants)).
				Msg("Resolved")

			return opts.render(cmd, result)
		},
	}
}

func newDepsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "deps <family> <mesh-name>...",
		Short:             MsgDepsShort,
		Long:              MsgDepsLong,
		Example:           MsgListExample,
		GroupID:           groupCore,
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: meshArgsCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolveOpts, err := opts.resolveOptions(args)
			if err != nil {
				return err
			}

			result, err := commands.Deps(resolveOpts)
			if err != nil {
				return err
			}
			return opts.render(cmd, result)
		},
	}
}

func newOutputsCmd(opts *globalOptions) *cobra.Command {
	var absolute bool

	cmd := &cobra.Command{
		Use:               "outputs <family> <mesh-name>...",
		Short:             MsgOutputsShort,
		Long:              MsgOutputsLong,
		Example:           MsgListExample,
		GroupID:           groupCore,
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: meshArgsCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolveOpts, err := opts.resolveOptions(args)
			if err != nil {
				return err
			}
			resolveOpts.Absolute = absolute

			result, err := commands.Outputs(resolveOpts)
			if err != nil {
				return err
			}
			return opts.render(cmd, result)
		},
	}

	cmd.Flags().BoolVarP(&absolute, "absolute", "a", false, MsgFlagAbsolute)
	return cmd
}

// resolveOptions resolves the paths and splits args into the family and its
// mesh names
func (o *globalOptions) resolveOptions(args []string) (commands.ResolveOptions, error) {
	p, err := o.resolvePaths()
	if err != nil {
		return commands.ResolveOptions{}, err
	}

	return commands.ResolveOptions{
		Family:     args[0],
		MeshNames:  args[1:],
		Paths:      p,
		FileSystem: o.fs,
	}, nil
}

// render writes result to the command's output in the selected format
func (o *globalOptions) render(cmd *cobra.Command, result interface{}) error {
	r, err := o.renderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return r.RenderResult(result)
}

// meshArgsCompletion completes family names first, then "all" and the
// catalog keys of the chosen family
func meshArgsCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return familyNames(), cobra.ShellCompDirectiveNoFileComp
	}

	family, err := catalog.ParseFamily(args[0])
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	seen := map[string]bool{}
	completions := []string{catalog.AllToken}
	for _, e := range catalog.Lookup(family).Entries {
		key := e.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		completions = append(completions, key)
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

func familyNames() []string {
	names := make([]string, 0, len(catalog.Families()))
	for _, f := range catalog.Families() {
		names = append(names, catalog.Lookup(f).VarName)
	}
	return names
}
