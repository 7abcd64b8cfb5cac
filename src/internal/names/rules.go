package names

import "strings"

var defaultPrefixes = set(
	"de", "da", "la", "du", "del", "dei", "vda.", "dello", "della", "degli", "delle",
	"van", "von", "der", "den", "heer", "ten", "ter", "vande", "vanden", "vander",
	"voor", "ver", "aan", "mc", "mac", "ben", "ibn", "bint", "al",
)

var defaultHonorifics = set(
	"mr", "mrs", "miss", "ms", "dr", "capt", "ofc", "rev", "prof", "sir", "cr", "hon",
)

// Rules holds the two lookup tables used by the classifier. Keys are lowercase.
// The zero value matches nothing; use DefaultRules for the built-in tables.
type Rules struct {
	prefixes   map[string]struct{}
	honorifics map[string]struct{}
}

// DefaultRules returns the built-in surname particles and honorifics.
// The tables are shared and never mutated.
func DefaultRules() Rules {
	return Rules{prefixes: defaultPrefixes, honorifics: defaultHonorifics}
}

// With returns a copy of r extended with extra prefixes and honorifics.
// Entries are trimmed and lowercased; blanks are ignored.
func (r Rules) With(prefixes, honorifics []string) Rules {
	return Rules{
		prefixes:   merge(r.prefixes, prefixes),
		honorifics: merge(r.honorifics, honorifics),
	}
}

// IsPrefix reports whether the lowercased token is a surname particle.
func (r Rules) IsPrefix(lower string) bool {
	_, ok := r.prefixes[lower]
	return ok
}

// IsHonorific reports whether the lowercased, punctuation-free token is a title.
func (r Rules) IsHonorific(lower string) bool {
	_, ok := r.honorifics[lower]
	return ok
}

func set(vals ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		m[v] = struct{}{}
	}
	return m
}

func merge(base map[string]struct{}, extra []string) map[string]struct{} {
	out := make(map[string]struct{}, len(base)+len(extra))
	for k := range base {
		out[k] = struct{}{}
	}
	for _, v := range extra {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		out[v] = struct{}{}
	}
	return out
}
