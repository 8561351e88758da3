package cli

import (
	"github.com/arthur-debert/configmapper/pkg/errors"
	"github.com/arthur-debert/configmapper/pkg/logging"
	"github.com/arthur-debert/configmapper/pkg/reconcile"
	"github.com/arthur-debert/configmapper/pkg/runner"
	"github.com/arthur-debert/configmapper/pkg/ui/report"
	"github.com/spf13/cobra"
)

func newApplyCmd(opts *rootOptions, d deps) *cobra.Command {
	return &cobra.Command{
		Use:     "apply",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Example: MsgApplyExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, opts, d)
		},
	}
}

func runApply(cmd *cobra.Command, opts *rootOptions, d deps) error {
	logger := logging.GetLogger("cli.apply")

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
	rep := report.New(out, theme, opts.verbosity > 0)

	rec := reconcile.New(d.fs, runner.New(d.fs, d.git))
	summary := reconcile.NewDriver(rec, rep).Run(cmd.Context(), entries)
	rep.Summary(summary)

	logger.Info().
		Str("config", settings.Config).
		Int("entries", len(entries)).
		Bool("strict", settings.Strict).
		Msg("Apply finished")

	if settings.Strict && summary.HasErrors() {
		return errors.Newf(errors.ErrEntriesFailed, MsgErrStrict,
			summary.Failed+summary.Invalid, len(summary.Outcomes))
	}
	return nil
}
