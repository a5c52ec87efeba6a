package domain

// Record is a parsed community profile document. Profiles are nested JSON
// keyed by domain area (hero, safety, housing, schools, ...). Records are
// read-only inputs: the accessors below never mutate and never fail on
// missing keys, they return empty containers instead.
type Record map[string]any

// Map returns the nested object under key, or an empty Record when the key
// is absent or holds a non-object value.
func (r Record) Map(key string) Record {
	if m, ok := r[key].(map[string]any); ok {
		return Record(m)
	}
	return Record{}
}

// Slice returns the list of objects under key. Non-object elements are
// skipped; an absent key yields nil.
func (r Record) Slice(key string) []Record {
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	items := make([]Record, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(map[string]any); ok {
			items = append(items, Record(m))
		}
	}
	return items
}

// Strings returns the list of strings under key.
func (r Record) Strings(key string) []string {
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	items := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			items = append(items, s)
		}
	}
	return items
}

// String returns the string under key, or "" when absent or not a string.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Float returns the number under key, or nil when the key is absent, null,
// or not numeric. A nil result is how callers distinguish "no data" from a
// genuine zero.
func (r Record) Float(key string) *float64 {
	switch v := r[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

// Len returns the number of elements under key when it holds a list.
func (r Record) Len(key string) int {
	raw, ok := r[key].([]any)
	if !ok {
		return 0
	}
	return len(raw)
}

// IsEmpty reports whether the record has no keys. Section chunkers use this
// to decide that a subtree is absent and no chunk should be produced.
func (r Record) IsEmpty() bool {
	return len(r) == 0
}
