package cli

import (
	"github.com/arthur-debert/configmapper/internal/version"
	"github.com/arthur-debert/configmapper/pkg/filesystem"
	"github.com/arthur-debert/configmapper/pkg/git"
	"github.com/arthur-debert/configmapper/pkg/logging"
	"github.com/arthur-debert/configmapper/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootOptions holds the global flags
type rootOptions struct {
	verbosity int
	config    string
	strict    bool
	color     string
}

// deps are the collaborators commands mutate the system through
type deps struct {
	fs  types.FS
	git git.Client
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(deps{
		fs:  filesystem.NewOS(),
		git: git.NewShellClient(),
	})
}

func newRootCmd(d deps) *cobra.Command {
	opts := &rootOptions{}

	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "config-mapper",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, opts, d)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&opts.config, "config", "c", "", MsgFlagConfig)
	flags.BoolVar(&opts.strict, "strict", false, MsgFlagStrict)
	flags.StringVar(&opts.color, "color", "", MsgFlagColor)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newApplyCmd(opts, d))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts, d))
	rootCmd.AddCommand(newGenconfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}
