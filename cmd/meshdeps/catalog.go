package meshdeps

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/meshdeps/pkg/commands"
)

func newCatalogCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "catalog [family]",
		Short:   MsgCatalogShort,
		Long:    MsgCatalogLong,
		GroupID: groupInfo,
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return familyNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var listOpts commands.ListCatalogsOptions
			if len(args) == 1 {
				listOpts.Family = args[0]
			}

			result, err := commands.ListCatalogs(listOpts)
			if err != nil {
				return err
			}
			return opts.render(cmd, result)
		},
	}
}

func newPathsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "paths",
		Short:   MsgPathsShort,
		Long:    MsgPathsLong,
		GroupID: groupInfo,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.resolvePaths()
			if err != nil {
				return err
			}

			result, err := commands.ShowPaths(commands.ShowPathsOptions{Paths: p})
			if err != nil {
				return err
			}
			return opts.render(cmd, result)
		},
	}
}
