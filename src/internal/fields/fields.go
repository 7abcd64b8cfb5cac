// Package fields binds a full name to the honorific, first name and last name
// fields of a host record.
//
// Hosts describe which fields they actually have through Accessors; a role the
// host cannot serve is skipped on read and on write.
package fields

import (
	"strings"

	"namesplit/src/internal/names"
)

// Mapping names the host field that plays each role.
// An empty role means the host has no such field.
type Mapping struct {
	Honorific string `yaml:"honorific" json:"honorific"`
	FirstName string `yaml:"first_name" json:"first_name"`
	LastName  string `yaml:"last_name" json:"last_name"`
}

// DefaultMapping maps every role to the field of the same name.
func DefaultMapping() Mapping {
	return Mapping{Honorific: "honorific", FirstName: "first_name", LastName: "last_name"}
}

// Clean trims surrounding whitespace from every field name.
func (m Mapping) Clean() Mapping {
	return Mapping{
		Honorific: strings.TrimSpace(m.Honorific),
		FirstName: strings.TrimSpace(m.FirstName),
		LastName:  strings.TrimSpace(m.LastName),
	}
}

// Inherit fills roles left empty in m from parent. The result is clean.
func (m Mapping) Inherit(parent Mapping) Mapping {
	m, parent = m.Clean(), parent.Clean()
	if m.Honorific == "" {
		m.Honorific = parent.Honorific
	}
	if m.FirstName == "" {
		m.FirstName = parent.FirstName
	}
	if m.LastName == "" {
		m.LastName = parent.LastName
	}
	return m
}

// Names returns the non-empty field names in role order, as Clean leaves them.
func (m Mapping) Names() []string {
	var out []string
	for _, n := range []string{m.Honorific, m.FirstName, m.LastName} {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Field is an optional getter/setter pair. Either may be nil.
type Field struct {
	Get func() string
	Set func(string)
}

// Accessors lists what a host supports for each role.
type Accessors struct {
	Honorific Field
	FirstName Field
	LastName  Field
}

// Host is a record whose name fields can be bound.
type Host interface {
	// Fields returns the accessors the host has for the field names in m.
	Fields(m Mapping) Accessors
}

// Splitter is satisfied by *names.Splitter and *names.CachedSplitter.
type Splitter interface {
	Split(name string, wantHonorific bool) names.Result
}

// Binder reads and writes full names through a fixed Mapping.
type Binder struct {
	Mapping  Mapping
	Splitter Splitter
}

// NewBinder returns a Binder over the cleaned mapping. A nil splitter means
// the default rules.
func NewBinder(m Mapping, s Splitter) Binder {
	if s == nil {
		s = defaultSplitter
	}
	return Binder{Mapping: m.Clean(), Splitter: s}
}

// FullName composes the host's name fields into a display name.
// Missing getters contribute nothing.
func (b Binder) FullName(h Host) string {
	a := h.Fields(b.Mapping.Clean())
	return names.Compose(get(a.Honorific), get(a.FirstName), get(a.LastName))
}

// SetFullName splits name and writes the parts to the host. Honorifics are
// only extracted when the host can store one.
func (b Binder) SetFullName(h Host, name string) {
	a := h.Fields(b.Mapping.Clean())
	wantHonorific := a.Honorific.Set != nil
	r := b.splitter().Split(name, wantHonorific)
	set(a.Honorific, r.Honorific)
	set(a.FirstName, r.FirstName)
	set(a.LastName, r.LastName)
}

func (b Binder) splitter() Splitter {
	if b.Splitter == nil {
		return defaultSplitter
	}
	return b.Splitter
}

var defaultSplitter = names.New()

// FullName is Binder.FullName with DefaultMapping and the default rules.
func FullName(h Host) string { return NewBinder(DefaultMapping(), defaultSplitter).FullName(h) }

// SetFullName is Binder.SetFullName with DefaultMapping and the default rules.
func SetFullName(h Host, name string) {
	NewBinder(DefaultMapping(), defaultSplitter).SetFullName(h, name)
}

func get(f Field) string {
	if f.Get == nil {
		return ""
	}
	return f.Get()
}

func set(f Field, v string) {
	if f.Set != nil {
		f.Set(v)
	}
}
