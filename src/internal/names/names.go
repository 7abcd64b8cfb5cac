// Package names splits free-form personal names into honorific, first name and
// last name, and composes them back into a display string.
package names

import (
	"errors"
	"fmt"
	"strings"

	"namesplit/src/internal/stringsx"
)

// ErrInvalidArgument is returned when a value that is not a name string is
// handed to SplitValue.
var ErrInvalidArgument = errors.New("invalid argument")

// Result is a split name. An empty field means the component is absent.
type Result struct {
	Honorific string `yaml:"honorific,omitempty" json:"honorific,omitempty"`
	FirstName string `yaml:"first_name,omitempty" json:"first_name,omitempty"`
	LastName  string `yaml:"last_name,omitempty" json:"last_name,omitempty"`
}

// Empty reports whether no component was recovered.
func (r Result) Empty() bool {
	return r.Honorific == "" && r.FirstName == "" && r.LastName == ""
}

// String returns the composed display form, e.g. "Dr. Jane Doe".
func (r Result) String() string { return Compose(r.Honorific, r.FirstName, r.LastName) }

// Citation returns the APA style "Family, G. N." form. Without a last name the
// first name is returned unchanged.
func (r Result) Citation() string {
	if r.LastName == "" {
		return r.FirstName
	}
	if gi := Initials(r.FirstName); gi != "" {
		return fmt.Sprintf("%s, %s", r.LastName, gi)
	}
	return r.LastName
}

var std = New()

// Split splits name with the default rules. See Splitter.Split.
func Split(name string, wantHonorific bool) Result { return std.Split(name, wantHonorific) }

// SplitHonorific is Split with honorific extraction enabled.
func SplitHonorific(name string) Result { return std.Split(name, true) }

// SplitValue splits an untyped value with the default rules. See Splitter.SplitValue.
func SplitValue(v any, wantHonorific bool) (Result, error) { return std.SplitValue(v, wantHonorific) }

// Split normalizes whitespace and splits name.
//
// With a comma, the text before the first comma is classified and rejoined as
// the first name and the text after it becomes the last name verbatim:
// "Ludwig Mies, van der Rohe" gives ("", "Ludwig Mies", "van der Rohe").
// A leading comma yields only a last name.
func (s *Splitter) Split(name string, wantHonorific bool) Result {
	name = Normalize(name)
	if name == "" {
		return Result{}
	}
	before, after, found := strings.Cut(name, ",")
	if !found {
		return s.Classify(tokens(name), wantHonorific)
	}
	before = strings.Trim(before, " ")
	after = strings.Trim(after, " ")
	if before == "" {
		return Result{LastName: after}
	}
	r := s.Classify(tokens(before), wantHonorific)
	return Result{
		Honorific: r.Honorific,
		FirstName: stringsx.JoinNonEmpty(" ", r.FirstName, r.LastName),
		LastName:  after,
	}
}

// SplitValue splits v when it holds a name. nil and nil *string count as an
// empty name; any other non-string type is rejected with ErrInvalidArgument.
func (s *Splitter) SplitValue(v any, wantHonorific bool) (Result, error) {
	name, err := AsName(v)
	if err != nil {
		return Result{}, err
	}
	return s.Split(name, wantHonorific), nil
}

// AsName extracts a name string from an untyped value without coercion.
func AsName(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case *string:
		if x == nil {
			return "", nil
		}
		return *x, nil
	}
	return "", fmt.Errorf("%w: name must be a string, got %T", ErrInvalidArgument, v)
}

// Normalize trims s and collapses inner whitespace runs to single spaces.
// Only ASCII whitespace separates tokens; a no-break space stays inside one.
func Normalize(s string) string { return strings.Join(tokens(s), " ") }

func tokens(s string) []string { return strings.FieldsFunc(s, isSpace) }

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Compose joins the present parts into a display name: "Dr. Jane Doe".
// The honorific gets a single trailing period.
func Compose(honorific, first, last string) string {
	if h := strings.TrimRight(strings.TrimSpace(honorific), "."); h != "" {
		honorific = h + "."
	} else {
		honorific = ""
	}
	return stringsx.JoinNonEmpty(" ", honorific, first, last)
}

// Initials converts a given name string into spaced initials: "Jane Q" -> "J. Q.".
func Initials(given string) string {
	given = strings.TrimSpace(given)
	if given == "" {
		return ""
	}
	var out []string
	for _, w := range strings.Fields(given) {
		r := []rune(w)
		if len(r) == 0 {
			continue
		}
		out = append(out, strings.ToUpper(string(r[0]))+".")
	}
	return strings.Join(out, " ")
}
