package types

// Entry is one declared mapping: content lives at Target and a symlink to it
// should appear at External. Repo, when set, is cloned into Target if Target
// is missing.
type Entry struct {
	Name     string `koanf:"name" toml:"name" yaml:"name"`
	Target   string `koanf:"target" toml:"target" yaml:"target"`
	External string `koanf:"external" toml:"external" yaml:"external"`
	Repo     string `koanf:"repo" toml:"repo,omitempty" yaml:"repo,omitempty"`
}

// HasRepo reports whether the entry declares a repository source.
func (e Entry) HasRepo() bool {
	return e.Repo != ""
}
