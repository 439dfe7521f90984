package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TeamSpec is one named team in a teams file.
type TeamSpec struct {
	Name    string   `yaml:"name"`
	Pokemon []string `yaml:"pokemon"`
}

// TeamsFile is the YAML layout for prebuilt trainer teams:
//
//	teams:
//	  - name: Ash
//	    pokemon: [Pikachu, Charmander, Squirtle]
type TeamsFile struct {
	Teams []TeamSpec `yaml:"teams"`
}

// ParseTeamsFile reads and validates a teams file. Every entry must name a
// known species and fit within the team limit.
func ParseTeamsFile(path string) (*TeamsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tf TeamsFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse teams YAML: %w", err)
	}

	for _, spec := range tf.Teams {
		if spec.Name == "" {
			return nil, fmt.Errorf("teams file: team with no name")
		}
		if len(spec.Pokemon) == 0 || len(spec.Pokemon) > TeamLimit {
			return nil, fmt.Errorf("teams file: team %q: %w: %d pokemon (want 1-%d)",
				spec.Name, ErrTeamSize, len(spec.Pokemon), TeamLimit)
		}
		for _, name := range spec.Pokemon {
			if _, err := FindSpecies(name); err != nil {
				return nil, fmt.Errorf("teams file: team %q: %w", spec.Name, err)
			}
		}
	}
	return &tf, nil
}

// TeamByName finds the spec with the given trainer name.
func (tf *TeamsFile) TeamByName(name string) (TeamSpec, bool) {
	for _, spec := range tf.Teams {
		if spec.Name == name {
			return spec, true
		}
	}
	return TeamSpec{}, false
}

// Build creates a trainer with this spec's team picked and registered.
func (ts TeamSpec) Build() (*Trainer, error) {
	tr := NewTrainer(ts.Name)
	if err := tr.PickNamedTeam(ts.Pokemon...); err != nil {
		return nil, fmt.Errorf("team %q: %w", ts.Name, err)
	}
	return tr, nil
}
