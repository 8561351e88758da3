package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/configmapper/pkg/errors"
)

const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"

	// AppDirName is the directory name used under the XDG directories
	AppDirName = "config-mapper"

	// SettingsFileName holds application settings, not entries
	SettingsFileName = "settings.toml"

	// DefaultEntriesFile is read from the working directory when no path is given
	DefaultEntriesFile = "config_mapper.toml"
)

// ResolveHome returns the current user's home directory: $HOME first, then
// the platform lookup. An empty string means no home could be found.
func ResolveHome() string {
	if home := os.Getenv(EnvHome); home != "" {
		return home
	}
	return xdg.Home
}

// SettingsPath returns the path of the optional settings file.
func SettingsPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName, SettingsFileName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, SettingsFileName)
}

// Expander substitutes a leading ~ with a fixed home directory.
type Expander struct {
	home string
}

// NewExpander creates an expander for home. home may be empty, in which case
// expanding any path that starts with ~ fails.
func NewExpander(home string) *Expander {
	return &Expander{home: home}
}

// Home returns the injected home directory.
func (e *Expander) Home() string {
	return e.home
}

// Expand replaces a leading "~" or "~/" with the home directory. Other
// paths, including "~user/..." forms, are returned unchanged.
func (e *Expander) Expand(path string) (string, error) {
	if !needsHome(path) {
		return path, nil
	}
	if e.home == "" {
		return "", errors.Newf(errors.ErrHomeUnresolved, "cannot expand %q: home directory is unknown", path).
			WithDetail("path", path)
	}
	if path == "~" {
		return e.home, nil
	}
	return filepath.Join(e.home, path[2:]), nil
}

func needsHome(path string) bool {
	return path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~"+string(filepath.Separator))
}
