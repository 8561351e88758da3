// Package config loads config-mapper's two inputs: the application settings
// (embedded defaults, an optional settings file, CONFIG_MAPPER_* environment
// variables) and the entries file listing what to link.
//
// Entries are read from TOML, or YAML when the file name ends in .yaml/.yml:
//
//	[[item]]
//	name = "vimrc"
//	target = "~/dotfiles/vimrc"
//	external = "~/.vimrc"
//	repo = "https://example.com/vim.git" # optional
//
// Any failure here is fatal for the run; nothing is reconciled from a
// partially loaded file.
package config
