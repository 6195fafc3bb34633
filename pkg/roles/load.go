package roles

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/talentops/rolecheck/pkg/errors"
)

// LoadYAML reads raw role strings from a YAML file holding either a
// plain list of strings or a mapping with a top-level "roles" list.
func LoadYAML(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var list []string
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var doc struct {
		Roles []string `yaml:"roles"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}
	return doc.Roles, nil
}

// LoadText reads raw role strings from a plain-text file, one role per
// line. Blank lines and lines starting with '#' are skipped.
func LoadText(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

// LoadFile dispatches on extension: .xml, .yaml/.yml, everything else
// is treated as plain text.
func LoadFile(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return LoadXML(path)
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return LoadText(path)
	}
}
