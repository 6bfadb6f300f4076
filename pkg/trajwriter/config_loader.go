package trajwriter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// wireCondition mirrors the field-per-selector, field-per-relation wire
// shape of the original config format (one boolean flag per left selector,
// one optional int per relation) so that hand-authored YAML reads the same
// way the original's text-proto configs did.
type wireCondition struct {
	BufferLength      bool `yaml:"buffer_length,omitempty"`
	StepIndex         bool `yaml:"step_index,omitempty"`
	StepsSinceApplied bool `yaml:"steps_since_applied,omitempty"`
	IsEndEpisode      bool `yaml:"is_end_episode,omitempty"`
	Data              bool `yaml:"data,omitempty"`

	Eq    *int `yaml:"eq,omitempty"`
	Ne    *int `yaml:"ne,omitempty"`
	Ge    *int `yaml:"ge,omitempty"`
	Le    *int `yaml:"le,omitempty"`
	Gt    *int `yaml:"gt,omitempty"`
	Lt    *int `yaml:"lt,omitempty"`
	ModEq *struct {
		Mod int `yaml:"mod"`
		Eq  int `yaml:"eq"`
	} `yaml:"mod_eq,omitempty"`
}

// UnmarshalYAML decodes a flat wire condition (one left-selector flag and
// one relation) into the tagged-union Condition.
func (c *Condition) UnmarshalYAML(value *yaml.Node) error {
	var w wireCondition
	if err := value.Decode(&w); err != nil {
		return err
	}

	switch {
	case w.BufferLength:
		c.Left = LeftBufferLength
	case w.StepIndex:
		c.Left = LeftStepIndex
	case w.StepsSinceApplied:
		c.Left = LeftStepsSinceApplied
	case w.IsEndEpisode:
		c.Left = LeftIsEndEpisode
	case w.Data:
		c.Left = LeftData
	default:
		c.Left = leftUnspecified
	}

	switch {
	case w.Eq != nil:
		c.Cmp = Eq(*w.Eq)
	case w.Ne != nil:
		c.Cmp = Ne(*w.Ne)
	case w.Ge != nil:
		c.Cmp = Ge(*w.Ge)
	case w.Le != nil:
		c.Cmp = Le(*w.Le)
	case w.Gt != nil:
		c.Cmp = Gt(*w.Gt)
	case w.Lt != nil:
		c.Cmp = Lt(*w.Lt)
	case w.ModEq != nil:
		c.Cmp = ModEq(w.ModEq.Mod, w.ModEq.Eq)
	default:
		c.Cmp = Cmp{Kind: cmpUnspecified}
	}

	return nil
}

// MarshalYAML encodes a Condition back into the flat wire shape, the
// inverse of UnmarshalYAML.
func (c Condition) MarshalYAML() (any, error) {
	w := wireCondition{}
	switch c.Left {
	case LeftBufferLength:
		w.BufferLength = true
	case LeftStepIndex:
		w.StepIndex = true
	case LeftStepsSinceApplied:
		w.StepsSinceApplied = true
	case LeftIsEndEpisode:
		w.IsEndEpisode = true
	case LeftData:
		w.Data = true
	}

	switch c.Cmp.Kind {
	case CmpEq:
		w.Eq = &c.Cmp.Value
	case CmpNe:
		w.Ne = &c.Cmp.Value
	case CmpGe:
		w.Ge = &c.Cmp.Value
	case CmpLe:
		w.Le = &c.Cmp.Value
	case CmpGt:
		w.Gt = &c.Cmp.Value
	case CmpLt:
		w.Lt = &c.Cmp.Value
	case CmpModEq:
		w.ModEq = &struct {
			Mod int `yaml:"mod"`
			Eq  int `yaml:"eq"`
		}{Mod: c.Cmp.Mod, Eq: c.Cmp.Eq}
	}
	return w, nil
}

// patternFile is the on-disk shape: a named list of patterns, so one file
// can describe every StructuredWriterConfig a writer needs.
type patternFile struct {
	Patterns []StructuredWriterConfig `yaml:"patterns"`
}

// LoadConfigsYAML reads a list of StructuredWriterConfig patterns from a
// YAML file shaped as `patterns: [...]`. It does not validate the configs;
// call Validate (or NewWriter, which validates internally) on the result.
func LoadConfigsYAML(path string) ([]StructuredWriterConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("trajwriter: reading config %q: %w", path, err)
	}

	var file patternFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("trajwriter: parsing config %q: %w", path, err)
	}

	return file.Patterns, nil
}
