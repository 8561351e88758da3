package config

import (
	"fmt"
	"os"

	"github.com/arthur-debert/configmapper/pkg/errors"
)

// WriteSample writes the sample entries file to path. An existing file is
// only replaced when force is set.
func WriteSample(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.Newf(errors.ErrConfigInvalid, "%s already exists", path).WithDetail("path", path)
		}
	}
	if err := os.WriteFile(path, sampleEntries, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
