package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Definitions is the parsed content of a *.candv.yaml file: a package name
// plus the containers to declare in it.
type Definitions struct {
	Package    string         `yaml:"package"`
	Containers []ContainerDef `yaml:"containers"`
}

// ContainerDef declares a single container.
//
// Kind selects the container core: "constants" (the default) embeds
// candv.Constants, "values" embeds candv.Values and requires Type, the Go
// type of the attached values.
type ContainerDef struct {
	Name    string      `yaml:"name"`
	Kind    string      `yaml:"kind"`
	Type    string      `yaml:"type"`
	Members []MemberDef `yaml:"members"`
}

// MemberDef declares a member. A member with nested Members becomes a group.
type MemberDef struct {
	Name        string      `yaml:"name"`
	Value       any         `yaml:"value"`
	VerboseName string      `yaml:"verbose_name"`
	HelpText    string      `yaml:"help_text"`
	Members     []MemberDef `yaml:"members"`
}

// Container kinds.
const (
	KindConstants = "constants"
	KindValues    = "values"
)

// Value types the generator can render as Go literals.
var valueTypes = map[string]bool{
	"string":  true,
	"int":     true,
	"int64":   true,
	"float64": true,
	"bool":    true,
}

// LoadDefinitions reads and validates a definitions file.
func LoadDefinitions(path string) (*Definitions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var defs Definitions
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := defs.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &defs, nil
}

func (d *Definitions) validate() error {
	if d.Package == "" {
		return fmt.Errorf("missing package name")
	}
	if len(d.Containers) == 0 {
		return fmt.Errorf("no containers declared")
	}

	seen := make(map[string]bool, len(d.Containers))
	for i := range d.Containers {
		c := &d.Containers[i]
		if err := c.validate(); err != nil {
			return err
		}
		if seen[c.Name] {
			return fmt.Errorf("container %q: declared twice", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

func (c *ContainerDef) validate() error {
	if c.Name == "" {
		return fmt.Errorf("container with no name")
	}
	if c.Kind == "" {
		c.Kind = KindConstants
	}

	switch c.Kind {
	case KindConstants:
		if c.Type != "" {
			return fmt.Errorf("container %q: type is only valid for kind %q", c.Name, KindValues)
		}
	case KindValues:
		if c.Type == "" {
			return fmt.Errorf("container %q: kind %q requires a type", c.Name, KindValues)
		}
		if !valueTypes[c.Type] {
			return fmt.Errorf("container %q: unsupported value type %q", c.Name, c.Type)
		}
	default:
		return fmt.Errorf("container %q: unknown kind %q", c.Name, c.Kind)
	}

	if len(c.Members) == 0 {
		return fmt.Errorf("container %q: no members declared", c.Name)
	}
	return validateMembers(c, c.Members)
}

func validateMembers(c *ContainerDef, members []MemberDef) error {
	seen := make(map[string]bool, len(members))
	for i := range members {
		m := &members[i]
		if m.Name == "" {
			return fmt.Errorf("container %q: member with no name", c.Name)
		}
		if seen[m.Name] {
			return fmt.Errorf("container %q: member %q declared twice", c.Name, m.Name)
		}
		seen[m.Name] = true

		if m.Value != nil && c.Kind != KindValues {
			return fmt.Errorf(
				"container %q: member %q has a value but the container kind is %q",
				c.Name, m.Name, c.Kind,
			)
		}
		if len(m.Members) > 0 {
			if err := validateMembers(c, m.Members); err != nil {
				return err
			}
		}
	}
	return nil
}
