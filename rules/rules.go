package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules is the rule text per topic, one bullet per entry.
type Rules struct {
	Concession []string `yaml:"concession"`
	Luggage    []string `yaml:"luggage"`
	Pass       []string `yaml:"pass"`
}

// Load reads the rule file. A missing file is not an error; it returns
// an empty set whose Available method reports false.
func Load(path string) (*Rules, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Rules{}, nil
		}
		return nil, fmt.Errorf("reading rules file %s: %w", path, err)
	}
	var r Rules
	if err := yaml.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	return &r, nil
}

// Available reports whether any rule text was loaded.
func (r *Rules) Available() bool {
	return len(r.Concession) > 0 || len(r.Luggage) > 0 || len(r.Pass) > 0
}
