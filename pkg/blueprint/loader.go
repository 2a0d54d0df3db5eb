package blueprint

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the decode target for blueprint files. Heart and spine are
// pointers so an omitted section can be distinguished from an explicit
// zero value and given defaults before validation.
type document struct {
	ID    string       `yaml:"id" json:"id"`
	Name  string       `yaml:"name" json:"name"`
	Head  HeadConfig   `yaml:"head" json:"head"`
	Arms  []ArmConfig  `yaml:"arms" json:"arms"`
	Legs  LegsConfig   `yaml:"legs" json:"legs"`
	Heart *HeartConfig `yaml:"heart" json:"heart"`
	Spine *SpineConfig `yaml:"spine" json:"spine"`
}

// Parse decodes a blueprint document from YAML (or JSON, which yaml.v3
// accepts as a subset), applies section defaults, and validates it.
// Field names follow the document contract exactly; unknown fields are
// ignored.
func Parse(data []byte) (AgentBlueprint, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return AgentBlueprint{}, fmt.Errorf("decoding blueprint document: %w", err)
	}

	b := AgentBlueprint{
		ID:    doc.ID,
		Name:  doc.Name,
		Head:  doc.Head,
		Arms:  doc.Arms,
		Legs:  doc.Legs,
		Heart: DefaultHeart(),
		Spine: DefaultSpine(),
	}
	if doc.Heart != nil {
		b.Heart = *doc.Heart
	}
	if doc.Spine != nil {
		b.Spine = *doc.Spine
	}
	if b.Legs.Mode == "" {
		b.Legs.Mode = ModeSingleAgent
	}

	return Validate(b)
}

// Load reads and parses a blueprint document from a file.
func Load(path string) (AgentBlueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AgentBlueprint{}, fmt.Errorf("reading blueprint file: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return AgentBlueprint{}, fmt.Errorf("blueprint %s: %w", path, err)
	}
	return b, nil
}
