package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namesplit/src/internal/names"
)

// contact has a title it can show but not change, like a computed field.
type contact struct {
	title, given, family string
}

func (c *contact) Fields(m Mapping) Accessors {
	var a Accessors
	if m.Honorific == "title" {
		a.Honorific = Field{Get: func() string { return c.title }}
	}
	if m.FirstName == "given" {
		a.FirstName = Field{Get: func() string { return c.given }, Set: func(v string) { c.given = v }}
	}
	if m.LastName == "family" {
		a.LastName = Field{Get: func() string { return c.family }, Set: func(v string) { c.family = v }}
	}
	return a
}

func TestSetFullNameWithHonorificField(t *testing.T) {
	rec := NewRecord("honorific", "first_name", "last_name")
	SetFullName(rec, "Mr. John Smith")

	assert.Equal(t, map[string]string{"honorific": "Mr", "first_name": "John", "last_name": "Smith"}, rec.Values())
	assert.Equal(t, "Mr. John Smith", FullName(rec))
}

func TestSetFullNameWithoutHonorificField(t *testing.T) {
	rec := NewRecord("first_name", "last_name")
	SetFullName(rec, "Mr. John Smith")

	_, ok := rec.Get("honorific")
	assert.False(t, ok)
	assert.Equal(t, map[string]string{"first_name": "Mr. John", "last_name": "Smith"}, rec.Values())
}

func TestSetFullNameClearsMissingParts(t *testing.T) {
	rec := NewRecord("honorific", "first_name", "last_name")
	SetFullName(rec, "Dr. Jane Doe")
	SetFullName(rec, "O'Connor")

	assert.Equal(t, map[string]string{"last_name": "O'Connor"}, rec.Values())
	assert.Equal(t, "O'Connor", FullName(rec))
}

func TestFullNameSkipsMissingGetters(t *testing.T) {
	rec := NewRecord("last_name")
	rec.Set("last_name", "Smith")
	assert.Equal(t, "Smith", FullName(rec))
	assert.Equal(t, "", FullName(NewRecord()))
}

func TestBinderCustomMapping(t *testing.T) {
	m := Mapping{FirstName: "given", LastName: "family"}.Inherit(Mapping{Honorific: "title"})
	require.Equal(t, Mapping{Honorific: "title", FirstName: "given", LastName: "family"}, m)

	c := &contact{title: "Prof"}
	b := NewBinder(m, nil)
	b.SetFullName(c, "Prof. Ludwig Mies van der Rohe")

	// No honorific setter, so the title stays in the first name.
	assert.Equal(t, "Prof. Ludwig", c.given)
	assert.Equal(t, "Mies van der Rohe", c.family)
	assert.Equal(t, "Prof. Prof. Ludwig Mies van der Rohe", b.FullName(c))
}

func TestBinderUnmappedRoleIsSkipped(t *testing.T) {
	c := &contact{given: "Jane", family: "Doe"}
	b := NewBinder(Mapping{FirstName: "given", LastName: "surname"}, nil)

	b.SetFullName(c, "John Smith")
	assert.Equal(t, "John", c.given)
	assert.Equal(t, "Doe", c.family)
	assert.Equal(t, "John", b.FullName(c))
}

func TestBinderUsesGivenSplitter(t *testing.T) {
	cached, err := names.NewCached(nil, 8)
	require.NoError(t, err)
	b := NewBinder(DefaultMapping(), cached)

	for i := 0; i < 3; i++ {
		b.SetFullName(NewRecord("first_name", "last_name"), "Vincent van Gogh")
	}
	assert.Equal(t, 1, cached.Len())

	var zero Binder
	rec := NewRecord("first_name", "last_name")
	zero.Mapping = DefaultMapping()
	zero.SetFullName(rec, "Vincent van Gogh")
	assert.Equal(t, map[string]string{"first_name": "Vincent", "last_name": "van Gogh"}, rec.Values())
}

func TestMappingInheritAndNames(t *testing.T) {
	m := Mapping{}.Inherit(DefaultMapping())
	assert.Equal(t, DefaultMapping(), m)
	assert.Equal(t, []string{"honorific", "first_name", "last_name"}, m.Names())

	m = Mapping{FirstName: "given"}
	assert.Equal(t, []string{"given"}, m.Names())
}

func TestPaddedMappingStillBinds(t *testing.T) {
	m := Mapping{FirstName: " given", LastName: "family "}.Inherit(Mapping{Honorific: "\ttitle "})
	assert.Equal(t, Mapping{Honorific: "title", FirstName: "given", LastName: "family"}, m)

	rec := NewRecord(m.Names()...)
	NewBinder(Mapping{FirstName: " given ", LastName: " family"}, nil).SetFullName(rec, "John Smith")
	assert.Equal(t, map[string]string{"given": "John", "family": "Smith"}, rec.Values())
}
