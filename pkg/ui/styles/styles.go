// Package styles holds the terminal styling for config-mapper's output.
//
// Styles have semantic names (Converged, Failed, FilePath, ...) and are
// defined in the embedded styles.yaml. A Theme binds them to one output so
// that color support is decided per writer rather than globally.
package styles

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// ColorDef is an adaptive color definition
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style definition
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config is the parsed styles file
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// Theme is a set of named styles bound to one renderer.
type Theme struct {
	renderer *lipgloss.Renderer
	styles   map[string]lipgloss.Style
}

// New builds the embedded theme for w. When plain is set no escape
// sequences are ever emitted.
func New(w io.Writer, plain bool) (*Theme, error) {
	return NewFromData(embeddedStyles, w, plain)
}

// NewFromData builds a theme from YAML style data.
func NewFromData(data []byte, w io.Writer, plain bool) (*Theme, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}

	renderer := lipgloss.NewRenderer(w)
	if plain {
		renderer.SetColorProfile(termenv.Ascii)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	theme := &Theme{renderer: renderer, styles: make(map[string]lipgloss.Style, len(config.Styles))}
	for name, def := range config.Styles {
		theme.styles[name] = buildStyle(renderer, colors, def)
	}
	return theme, nil
}

func buildStyle(r *lipgloss.Renderer, colors map[string]lipgloss.AdaptiveColor, def StyleDef) lipgloss.Style {
	style := r.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}

	return style
}

// Has reports whether the theme defines name.
func (t *Theme) Has(name string) bool {
	_, ok := t.styles[name]
	return ok
}

// Get returns the named style, or an unstyled one.
func (t *Theme) Get(name string) lipgloss.Style {
	if style, ok := t.styles[name]; ok {
		return style
	}
	return t.renderer.NewStyle()
}

// Render applies the named style to text.
func (t *Theme) Render(name, text string) string {
	return t.Get(name).Render(text)
}
