package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/configmapper/pkg/errors"
	"github.com/arthur-debert/configmapper/pkg/logging"
	"github.com/arthur-debert/configmapper/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// itemsKey is the top-level array holding the entries.
const itemsKey = "item"

// LoadEntries reads and decodes the entries file at path. The entries are
// returned in file order with paths exactly as written; see Resolve.
func LoadEntries(path string) ([]types.Entry, error) {
	logger := logging.GetLogger("config").With().Str("path", path).Logger()

	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read entries file %s", path).
			WithDetail("path", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse entries file %s", path).
			WithDetail("path", path)
	}

	if !k.Exists(itemsKey) {
		return nil, errors.Newf(errors.ErrConfigInvalid, "%s has no %q entries", path, itemsKey).
			WithDetail("path", path)
	}

	var entries []types.Entry
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:      &entries,
			ErrorUnused: true,
		},
	}
	if err := k.UnmarshalWithConf(itemsKey, &entries, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid entries in %s", path).
			WithDetail("path", path)
	}

	for i, entry := range entries {
		if err := validateEntry(i, entry); err != nil {
			return nil, err.WithDetail("path", path)
		}
	}

	logger.Debug().Int("entries", len(entries)).Msg("Loaded entries")
	return entries, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func validateEntry(index int, entry types.Entry) *errors.Error {
	missing := func(field string) *errors.Error {
		return errors.Newf(errors.ErrConfigInvalid, "%s %d (%q) is missing %q", itemsKey, index, entry.Name, field).
			WithDetail("index", index)
	}
	switch {
	case strings.TrimSpace(entry.Name) == "":
		return missing("name")
	case entry.Target == "":
		return missing("target")
	case entry.External == "":
		return missing("external")
	}
	return nil
}
