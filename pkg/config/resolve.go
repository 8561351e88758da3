package config

import (
	"path/filepath"

	"github.com/arthur-debert/configmapper/pkg/errors"
	"github.com/arthur-debert/configmapper/pkg/paths"
	"github.com/arthur-debert/configmapper/pkg/types"
)

// Resolve expands the target and external of every entry, makes them
// absolute against the working directory and checks that no two entries,
// and no entry with itself, share a path. Entries keep their order.
func Resolve(entries []types.Entry, exp *paths.Expander) ([]types.Entry, error) {
	resolved := make([]types.Entry, 0, len(entries))
	for _, entry := range entries {
		target, err := exp.Expand(entry.Target)
		if err != nil {
			return nil, err
		}
		external, err := exp.Expand(entry.External)
		if err != nil {
			return nil, err
		}
		// Link destinations are stored as written and must be absolute.
		if entry.Target, err = absolute(entry.Name, "target", target); err != nil {
			return nil, err
		}
		if entry.External, err = absolute(entry.Name, "external", external); err != nil {
			return nil, err
		}
		resolved = append(resolved, entry)
	}

	if err := checkDisjoint(resolved); err != nil {
		return nil, err
	}
	return resolved, nil
}

func absolute(name, role, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrConfigInvalid, "cannot make %s of %q absolute", role, name).
			WithDetail("path", path)
	}
	return abs, nil
}

// checkDisjoint enforces that every path appears in at most one role in at
// most one entry.
func checkDisjoint(entries []types.Entry) error {
	type use struct {
		entry string
		role  string
	}
	seen := make(map[string]use, len(entries)*2)

	claim := func(path string, u use) error {
		if prev, ok := seen[path]; ok {
			return errors.Newf(errors.ErrPathCollision, "%s of %q and %s of %q are both %s",
				prev.role, prev.entry, u.role, u.entry, path).
				WithDetail("path", path)
		}
		seen[path] = u
		return nil
	}

	for _, entry := range entries {
		if err := claim(entry.Target, use{entry.Name, "target"}); err != nil {
			return err
		}
		if err := claim(entry.External, use{entry.Name, "external"}); err != nil {
			return err
		}
	}
	return nil
}
