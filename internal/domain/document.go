package domain

import (
	"strings"
	"unicode"
)

// FieldID is the storage identity field. FieldLegacyID is the plain
// "id" alias some imported datasets carry alongside it.
const (
	FieldID       = "_id"
	FieldLegacyID = "id"
)

// Document is a schema-less record. Required and typed fields are
// validated by the entity constructors; any extra caller-supplied fields
// are preserved verbatim and round-tripped.
type Document map[string]any

// Clone returns a shallow copy. Normalization always works on a copy so
// the caller's map is never mutated.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// StringField returns the value for key when present and a string.
func (d Document) StringField(key string) (string, bool) {
	v, ok := d[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// IntField returns the value for key as an int64. JSON decoding yields
// float64 for numbers and the bson decoder yields int32/int64, so all
// integral numeric representations are accepted.
func (d Document) IntField(key string) (int64, bool) {
	switch v := d[key].(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// FloatField returns the value for key as a float64.
func (d Document) FloatField(key string) (float64, bool) {
	switch v := d[key].(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
