package meshdeps

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/meshdeps/pkg/commands"
)

func newGenConfigCmd(opts *globalOptions) *cobra.Command {
	var (
		write     bool
		output    string
		effective bool
	)

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Example: `  meshdeps gen-config                # Output to stdout
  meshdeps gen-config -w             # Write to the user configuration file
  meshdeps --user PZwan gen-config --effective`,
		GroupID: groupMisc,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			genOpts := commands.GenConfigOptions{
				Write:      write,
				TargetPath: output,
				FileSystem: afero.NewOsFs(),
			}

			if effective {
				cfg, err := opts.loadConfig()
				if err != nil {
					return err
				}
				genOpts.Effective = cfg
			}

			result, err := commands.GenConfig(genOpts)
			if err != nil {
				return err
			}
			return opts.render(cmd, result)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)
	return cmd
}
