package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedPerson is one entry of a seed roster file. The file is a YAML (or
// JSON) list; gender and preference are parsed by the service so the same
// spellings the API accepts work here too.
type SeedPerson struct {
	Name       string `yaml:"name"`
	Gender     string `yaml:"gender"`
	Preference string `yaml:"preference"`
	BondedWith string `yaml:"bonded_with"`
}

// LoadSeed reads a seed roster file. An empty path yields no people.
func LoadSeed(path string) ([]SeedPerson, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed roster: %w", err)
	}
	return ParseSeed(raw)
}

// ParseSeed decodes seed roster bytes.
func ParseSeed(raw []byte) ([]SeedPerson, error) {
	var people []SeedPerson
	if err := yaml.Unmarshal(raw, &people); err != nil {
		return nil, fmt.Errorf("parse seed roster: %w", err)
	}
	for i, p := range people {
		if p.Name == "" {
			return nil, fmt.Errorf("seed roster entry %d: name is required", i+1)
		}
	}
	return people, nil
}
