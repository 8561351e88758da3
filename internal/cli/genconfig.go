package cli

import (
	"fmt"

	"github.com/arthur-debert/configmapper/pkg/config"
	"github.com/arthur-debert/configmapper/pkg/paths"
	"github.com/spf13/cobra"
)

func newGenconfigCmd(opts *rootOptions) *cobra.Command {
	var (
		write bool
		force bool
	)

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenconfigShort,
		Long:  MsgGenconfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !write {
				_, err := cmd.OutOrStdout().Write(config.SampleEntries())
				return err
			}

			settings, err := opts.loadSettings(cmd)
			if err != nil {
				return err
			}
			path, err := paths.NewExpander(paths.ResolveHome()).Expand(settings.Config)
			if err != nil {
				return err
			}

			if err := config.WriteSample(path, force); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgSampleWritten, path)
			return err
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}
