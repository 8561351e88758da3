package cli

import (
	"github.com/arthur-debert/configmapper/pkg/probe"
	"github.com/arthur-debert/configmapper/pkg/reconcile"
	"github.com/arthur-debert/configmapper/pkg/ui/report"
	"github.com/spf13/cobra"
)

func newStatusCmd(opts *rootOptions, d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: MsgStatusShort,
		Long:  MsgStatusLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.loadSettings(cmd)
			if err != nil {
				return err
			}

			entries, err := loadEntries(settings)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			theme, err := newTheme(out, settings.Color)
			if err != nil {
				return err
			}
			rep := report.New(out, theme, false)

			for _, entry := range entries {
				obs := probe.Observe(d.fs, entry)
				rep.State(entry, obs, reconcile.Classify(entry, obs))
			}
			return nil
		},
	}
}
