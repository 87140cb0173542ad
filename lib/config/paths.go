package config

import (
	"path/filepath"

	yaml "github.com/goccy/go-yaml"
)

// CfgPath is a path that, when read from a config file, is resolved
// relative to the directory containing that file.
type CfgPath string

// UnmarshalBase is the directory of the config file being parsed.
// It is only set for the duration of Parse.
var UnmarshalBase string

func (c *CfgPath) UnmarshalYAML(b []byte) error {
	var path string

	err := yaml.Unmarshal(b, &path)
	if err != nil {
		return err
	}

	if filepath.IsAbs(path) || UnmarshalBase == "" {
		*c = CfgPath(path)
	} else {
		*c = CfgPath(filepath.Join(UnmarshalBase, path))
	}
	return nil
}
