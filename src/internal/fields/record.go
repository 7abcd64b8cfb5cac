package fields

// Record is a Host backed by a string map. Only the declared keys exist as
// fields; anything else a Mapping names is treated as missing.
type Record struct {
	declared map[string]bool
	values   map[string]string
}

// NewRecord returns a Record declaring the given field names.
func NewRecord(keys ...string) *Record {
	r := &Record{declared: map[string]bool{}, values: map[string]string{}}
	for _, k := range keys {
		r.declared[k] = true
	}
	return r
}

// Get returns the value of key and whether key is declared.
func (r *Record) Get(key string) (string, bool) {
	if !r.declared[key] {
		return "", false
	}
	return r.values[key], true
}

// Set stores v under key, declaring it if needed.
func (r *Record) Set(key, v string) {
	r.declared[key] = true
	r.values[key] = v
}

// Values returns a copy of the stored values, omitting empty ones.
func (r *Record) Values() map[string]string {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// Fields implements Host.
func (r *Record) Fields(m Mapping) Accessors {
	return Accessors{
		Honorific: r.field(m.Honorific),
		FirstName: r.field(m.FirstName),
		LastName:  r.field(m.LastName),
	}
}

func (r *Record) field(key string) Field {
	if key == "" || !r.declared[key] {
		return Field{}
	}
	return Field{
		Get: func() string { return r.values[key] },
		Set: func(v string) { r.values[key] = v },
	}
}
