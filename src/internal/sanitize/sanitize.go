package sanitize

import (
	"strings"

	"namesplit/src/internal/schema"
)

// MaxNameLen bounds every name field after cleaning, in runes.
const MaxNameLen = 256

// CleanString trims and removes control characters except tab/newline/carriage
// return, keeping at most max runes (if max <= 0, no truncation).
func CleanString(s string, max int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	// remove controls except \n, \t, \r
	var b strings.Builder
	n := 0
	for _, r := range s {
		if r == '\n' || r == '\t' || r == '\r' || (r >= 0x20 && r != 0x7f) {
			b.WriteRune(r)
			n++
			if max > 0 && n >= max {
				break
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// CleanPerson applies conservative sanitization to all strings in the record.
func CleanPerson(p *schema.Person) {
	if p == nil {
		return
	}
	p.ID = CleanString(p.ID, 64)
	p.Name = CleanString(p.Name, MaxNameLen)
	p.Honorific = CleanString(p.Honorific, 32)
	p.FirstName = CleanString(p.FirstName, MaxNameLen)
	p.LastName = CleanString(p.LastName, MaxNameLen)
}

// CleanPeople sanitizes every record and drops the ones left without a name.
func CleanPeople(people schema.People) schema.People {
	if len(people) == 0 {
		return nil
	}
	out := make(schema.People, 0, len(people))
	for _, p := range people {
		CleanPerson(&p)
		if p.Empty() {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
