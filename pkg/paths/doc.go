// Package paths handles home directory resolution and tilde expansion, and
// knows where config-mapper keeps its own files under the XDG base
// directories.
//
// The home directory is resolved once at startup and injected into an
// Expander; nothing below the CLI reads the environment.
//
//	home, err := paths.ResolveHome()
//	exp := paths.NewExpander(home)
//	target, err := exp.Expand("~/dotfiles/vimrc") // /home/user/dotfiles/vimrc
package paths
