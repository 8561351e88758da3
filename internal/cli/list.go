package cli

import (
	"fmt"

	"github.com/arthur-debert/configmapper/pkg/config"
	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Example: MsgListExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.loadSettings(cmd)
			if err != nil {
				return err
			}

			entries, err := loadEntries(settings)
			if err != nil {
				return err
			}

			if len(entries) == 0 && format == config.FormatText {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), MsgNoEntries)
				return err
			}

			out, err := config.Encode(entries, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", config.FormatText, MsgFlagFormat)
	return cmd
}
