package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"namesplit/src/internal/sanitize"
	"namesplit/src/internal/schema"
)

// Output formats accepted by WritePeople.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Stdin is the path that makes ReadPeople read standard input.
const Stdin = "-"

// document is the on-disk layout: a top-level people key. A bare list or a
// single name is accepted on read as well.
type document struct {
	People any `yaml:"people" json:"people"`
}

// ReadPeople loads, sanitizes and returns the people listed in a YAML file.
func ReadPeople(path string) (schema.People, error) {
	var (
		data []byte
		err  error
	)
	if path == Stdin {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	people, err := ParsePeople(data)
	if err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return people, nil
}

// ParsePeople decodes people from YAML bytes and sanitizes them.
func ParsePeople(data []byte) (schema.People, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, nil
	}
	node := root.Content[0]
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "people" {
				node = node.Content[i+1]
				break
			}
		}
	}
	var people schema.People
	if err := node.Decode(&people); err != nil {
		return nil, err
	}
	return sanitize.CleanPeople(people), nil
}

// CheckFormat returns an error unless WritePeople accepts format.
func CheckFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatYAML, "yml", "", FormatJSON:
		return nil
	}
	return fmt.Errorf("unsupported format: %s", format)
}

// WritePeople writes records under a top-level people key as YAML or JSON.
func WritePeople(w io.Writer, records any, format string) error {
	doc := document{People: records}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatYAML, "yml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	default:
		return CheckFormat(format)
	}
}

// BuildLastNameIndex maps each last name to the sorted ids of the people who
// carry it. Records without a last name or id are skipped.
func BuildLastNameIndex(people schema.People) map[string][]string {
	index := map[string][]string{}
	seen := map[string]bool{}
	for _, p := range people {
		last := strings.TrimSpace(p.LastName)
		id := strings.TrimSpace(p.ID)
		if last == "" || id == "" || seen[last+"\x00"+id] {
			continue
		}
		seen[last+"\x00"+id] = true
		index[last] = append(index[last], id)
	}
	// Sort lists for determinism
	for k := range index {
		sort.Strings(index[k])
	}
	return index
}

// WriteIndex writes the given value to the target JSON file with indentation,
// creating parent directories as needed.
func WriteIndex(target string, v any) (string, error) {
	if strings.TrimSpace(target) == "" {
		return "", errors.New("index path is required")
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(target, b, 0o644); err != nil {
		return "", err
	}
	return target, nil
}
