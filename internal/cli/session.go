package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/configmapper/pkg/config"
	"github.com/arthur-debert/configmapper/pkg/logging"
	"github.com/arthur-debert/configmapper/pkg/paths"
	"github.com/arthur-debert/configmapper/pkg/types"
	"github.com/arthur-debert/configmapper/pkg/ui"
	"github.com/arthur-debert/configmapper/pkg/ui/styles"
	"github.com/spf13/cobra"
)

// loadSettings layers the flags the user actually set over the settings
// file and environment.
func (o *rootOptions) loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("config") {
		overrides["config"] = o.config
	}
	if flags.Changed("strict") {
		overrides["strict"] = o.strict
	}
	if flags.Changed("color") {
		overrides["color"] = o.color
	}

	settings, err := config.LoadSettings(paths.SettingsPath(), overrides)
	if err != nil {
		return nil, fmt.Errorf(MsgErrSettings, err)
	}

	logger := logging.GetLogger("cli")
	logger.Debug().
		Str("config", settings.Config).
		Bool("strict", settings.Strict).
		Str("color", settings.Color).
		Msg("Settings loaded")
	return settings, nil
}

// loadEntries reads the entries file named by settings and resolves every
// path against the current home directory.
func loadEntries(settings *config.Settings) ([]types.Entry, error) {
	exp := paths.NewExpander(paths.ResolveHome())

	entriesPath, err := exp.Expand(settings.Config)
	if err != nil {
		return nil, err
	}

	entries, err := config.LoadEntries(entriesPath)
	if err != nil {
		return nil, err
	}
	return config.Resolve(entries, exp)
}

// newTheme picks styled or plain output for w from the color setting.
func newTheme(w io.Writer, color string) (*styles.Theme, error) {
	format, err := ui.ParseFormat(color)
	if err != nil {
		return nil, err
	}

	file, _ := w.(*os.File)
	plain := ui.Resolve(format, file) != ui.FormatTerminal
	return styles.New(w, plain)
}
