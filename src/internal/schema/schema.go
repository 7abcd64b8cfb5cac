package schema

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"namesplit/src/internal/fields"
	"namesplit/src/internal/names"
)

// Person is one name record as stored in YAML: either a full name, the split
// parts, or both.
type Person struct {
	ID        string `yaml:"id,omitempty" json:"id,omitempty"`
	Name      string `yaml:"name,omitempty" json:"name,omitempty"`
	Honorific string `yaml:"honorific,omitempty" json:"honorific,omitempty"`
	FirstName string `yaml:"first_name,omitempty" json:"first_name,omitempty"`
	LastName  string `yaml:"last_name,omitempty" json:"last_name,omitempty"`
}

// Empty reports whether the record carries no name at all.
func (p Person) Empty() bool {
	return strings.TrimSpace(p.Name) == "" && strings.TrimSpace(p.FirstName) == "" && strings.TrimSpace(p.LastName) == ""
}

// Validate applies basic validation rules.
func (p *Person) Validate() error {
	if p.Empty() {
		return errors.New("name or first_name/last_name is required")
	}
	return nil
}

// Fields implements fields.Host. A Person keeps each role in its own struct
// field whatever name the mapping gives it; a role the mapping leaves empty
// has no field.
func (p *Person) Fields(m fields.Mapping) fields.Accessors {
	return fields.Accessors{
		Honorific: field(m.Honorific, &p.Honorific),
		FirstName: field(m.FirstName, &p.FirstName),
		LastName:  field(m.LastName, &p.LastName),
	}
}

func field(name string, ptr *string) fields.Field {
	if strings.TrimSpace(name) == "" {
		return fields.Field{}
	}
	return fields.Field{
		Get: func() string { return *ptr },
		Set: func(v string) { *ptr = v },
	}
}

// UnmarshalYAML accepts a bare string (the full name) or a mapping. A name that
// is not a string is rejected rather than coerced.
func (p *Person) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		name, err := decodeName(value)
		if err != nil {
			return err
		}
		*p = Person{Name: strings.TrimSpace(name)}
		return nil
	case yaml.MappingNode:
		type plain Person
		var out plain
		var name string
		rest := *value
		rest.Content = nil
		for i := 0; i+1 < len(value.Content); i += 2 {
			k, v := value.Content[i], value.Content[i+1]
			if k.Value != "name" {
				rest.Content = append(rest.Content, k, v)
				continue
			}
			n, err := decodeName(v)
			if err != nil {
				return err
			}
			name = n
		}
		if err := rest.Decode(&out); err != nil {
			return err
		}
		out.Name = strings.TrimSpace(name)
		*p = Person(out)
		return nil
	default:
		return fmt.Errorf("line %d: %w: person must be a string or a mapping", value.Line, names.ErrInvalidArgument)
	}
}

func decodeName(n *yaml.Node) (string, error) {
	var raw any
	if err := n.Decode(&raw); err != nil {
		return "", err
	}
	name, err := names.AsName(raw)
	if err != nil {
		return "", fmt.Errorf("line %d: %w", n.Line, err)
	}
	return name, nil
}

// People is a slice of Person that can unmarshal from multiple YAML shapes:
// - a single string (one full name)
// - a sequence of strings and/or mappings
// - a mapping (single Person object)
// Empty entries are skipped.
type People []Person

func (ps *People) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		*ps = nil
		return nil
	}
	switch value.Kind {
	case yaml.ScalarNode, yaml.MappingNode:
		var p Person
		if err := value.Decode(&p); err != nil {
			return err
		}
		if p.Empty() {
			*ps = nil
			return nil
		}
		*ps = People{p}
		return nil
	case yaml.SequenceNode:
		var out People
		for _, n := range value.Content {
			var p Person
			if err := n.Decode(&p); err != nil {
				return err
			}
			if p.Empty() {
				continue
			}
			out = append(out, p)
		}
		*ps = out
		return nil
	default:
		*ps = nil
		return nil
	}
}

var nonAlnum = regexp.MustCompile(`[^\p{L}\p{N}]+`)
var dashCollapse = regexp.MustCompile(`-+`)

// Slugify generates an id-friendly slug from a name.
func Slugify(name string) string {
	t := strings.ToLower(strings.TrimSpace(name))
	t = nonAlnum.ReplaceAllString(t, "-")
	t = dashCollapse.ReplaceAllString(t, "-")
	return strings.Trim(t, "-")
}
