package names

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// wordClass holds the patterns built on one definition of a word character.
// withApostrophe matches O'Connor and d'Artagnan but not Noda'. initial
// matches M and M. exceptionSurname matches the "van der" and "de la" forms
// of Mies van der Rohe, Reyes de la Barrera and Pérez Martínez Vda. de la Cruz.
type wordClass struct {
	nonWord          *regexp.Regexp
	withApostrophe   *regexp.Regexp
	initial          *regexp.Regexp
	exceptionSurname *regexp.Regexp
}

// newWordClass compiles the patterns for the character class body, e.g. "A-Z".
func newWordClass(body string) wordClass {
	word := `[` + body + `]`
	return wordClass{
		nonWord:          regexp.MustCompile(`[^` + body + `]`),
		withApostrophe:   regexp.MustCompile(word + `'` + word + `+`),
		initial:          regexp.MustCompile(`^` + word + `\.?$`),
		exceptionSurname: regexp.MustCompile(`(?i)^(van der|(vda\. )?de la ` + word + `+$)`),
	}
}

// asciiWords counts ASCII letters, digits and underscore as word characters.
var asciiWords = newWordClass(`A-Za-z0-9_`)

// unicodeWords counts Unicode letters, marks, digits and connector punctuation.
var unicodeWords = newWordClass(`\p{L}\p{M}\p{N}\p{Pc}`)

// Splitter classifies name tokens into honorific, first name and last name.
// A Splitter is immutable and safe for concurrent use.
type Splitter struct {
	rules       Rules
	foldUnicode bool
	words       *wordClass
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithRules replaces the default prefix and honorific tables.
func WithRules(r Rules) Option { return func(s *Splitter) { s.rules = r } }

// WithUnicodeFold makes table lookups use full Unicode case folding instead of
// ASCII lowercasing.
func WithUnicodeFold(on bool) Option { return func(s *Splitter) { s.foldUnicode = on } }

// WithUnicodeWords makes the apostrophe, initial, exception and honorific
// patterns treat any Unicode letter or digit as a word character. By default
// only ASCII letters, digits and underscore are, so "d'Éon" is no apostrophe
// name and "É." is no initial.
func WithUnicodeWords(on bool) Option {
	return func(s *Splitter) {
		if on {
			s.words = &unicodeWords
		} else {
			s.words = &asciiWords
		}
	}
}

// New returns a Splitter using DefaultRules and ASCII word characters unless
// overridden.
func New(opts ...Option) *Splitter {
	s := &Splitter{rules: DefaultRules(), words: &asciiWords}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Classify runs the token classifier over an already tokenized name.
// It never fails; no tokens yields an empty Result.
func (s *Splitter) Classify(tokens []string, wantHonorific bool) Result {
	c := classifier{s: s, wantHonorific: wantHonorific}
	c.run(tokens)
	return c.result()
}

func (s *Splitter) lower(tok string) string {
	if s.foldUnicode {
		// Casers keep state; one per call keeps the Splitter shareable.
		return cases.Fold().String(tok)
	}
	return asciiLower(tok)
}

func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

type scanState int

const (
	scanning scanState = iota
	draining
)

type placement int

const (
	toFirst placement = iota
	toHonorific
	toLast
)

// classifier is the per-call working state: three accumulators that partition
// the token sequence in order, and whether tokens are still being inspected.
type classifier struct {
	s             *Splitter
	wantHonorific bool

	honorific []string
	first     []string
	last      []string
	state     scanState
}

func (c *classifier) run(tokens []string) {
	queue := tokens
	for c.state == scanning && len(queue) > 0 {
		tok := queue[0]
		queue = queue[1:]
		switch c.place(tok, len(queue) == 0) {
		case toHonorific:
			c.honorific = append(c.honorific, tok)
		case toLast:
			c.last = append(c.last, tok)
			c.state = draining
		default:
			c.first = append(c.first, tok)
		}
	}
	// Once a token lands in the last name, everything after it follows.
	c.last = append(c.last, queue...)
	c.adjustExceptions()
}

// place applies the rules in order; the first match wins.
func (c *classifier) place(tok string, lastToken bool) placement {
	switch {
	case c.isHonorific(tok):
		return toHonorific
	case c.s.rules.IsPrefix(c.s.lower(tok)):
		return toLast
	case c.words().withApostrophe.MatchString(tok):
		return toLast
	case len(c.first) > 0 && lastToken && !c.words().initial.MatchString(tok):
		return toLast
	case len(c.honorific) > 0 && lastToken && len(c.first) == 0:
		return toLast
	}
	return toFirst
}

func (c *classifier) words() *wordClass {
	if c.s.words == nil {
		return &asciiWords
	}
	return c.s.words
}

// Honorifics are only recognized before anything else has been captured.
func (c *classifier) isHonorific(tok string) bool {
	if !c.wantHonorific || len(c.honorific) > 0 || len(c.first) > 0 || len(c.last) > 0 {
		return false
	}
	return c.s.rules.IsHonorific(c.s.lower(c.words().nonWord.ReplaceAllString(tok, "")))
}

// adjustExceptions rebalances multi-word given names in front of the
// "van der" and "de la" surname forms, leaving at most two given names.
func (c *classifier) adjustExceptions() {
	if len(c.first) <= 1 {
		return
	}
	if !c.words().exceptionSurname.MatchString(strings.Join(c.last, " ")) {
		return
	}
	for {
		n := len(c.first) - 1
		c.last = append([]string{c.first[n]}, c.last...)
		c.first = c.first[:n]
		if len(c.first) <= 2 {
			break
		}
	}
}

func (c *classifier) result() Result {
	var r Result
	if len(c.honorific) > 0 {
		r.Honorific = c.words().nonWord.ReplaceAllString(c.honorific[0], "")
	}
	r.FirstName = strings.Join(c.first, " ")
	r.LastName = strings.Join(c.last, " ")
	return r
}
