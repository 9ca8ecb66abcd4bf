package domain

import (
	"strings"
	"unicode/utf8"
)

// Collection and field names for park documents. Parks are keyed by
// park_code, a lower-cased short code from the parks dataset (abli,
// yose, ...).
const (
	ParkCollection = "parks"

	FieldParkCode = "park_code"
	FieldFullName = "full_name"
)

const (
	minParkCodeLen = 2
	maxParkCodeLen = 10
)

// NormalizeParkCode trims and lower-cases a park code. Codes are 2-10
// alphanumeric characters.
func NormalizeParkCode(code string) (string, error) {
	c := strings.ToLower(trimmed(code))
	if n := utf8.RuneCountInString(c); n < minParkCodeLen || n > maxParkCodeLen {
		return "", InvalidInputError{Reason: "park code must be 2-10 characters"}
	}
	if !isAlnum(c) {
		return "", InvalidInputError{Reason: "park code must be alphanumeric"}
	}
	return c, nil
}

// NewPark validates the fields for a new park and returns a normalized
// copy. A park needs a park_code plus at least one of name/full_name;
// the many descriptive dataset fields ride along untouched.
func NewPark(fields Document) (Document, error) {
	if fields == nil {
		return nil, InvalidInputError{Reason: "park fields are required"}
	}
	rawCode, ok := fields.StringField(FieldParkCode)
	if !ok {
		return nil, InvalidInputError{Reason: "park_code is required"}
	}
	code, err := NormalizeParkCode(rawCode)
	if err != nil {
		return nil, err
	}
	name, _ := fields.StringField(FieldName)
	fullName, _ := fields.StringField(FieldFullName)
	if trimmed(name) == "" && trimmed(fullName) == "" {
		return nil, InvalidInputError{Reason: "park requires a name or full_name"}
	}

	doc := fields.Clone()
	doc[FieldParkCode] = code
	if err := normalizeParkOptionals(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParkPatch validates an update patch and returns a normalized copy with
// the business key stripped: park_code is immutable after creation.
func ParkPatch(fields Document) (Document, error) {
	if fields == nil {
		return nil, InvalidInputError{Reason: "update fields are required"}
	}
	doc := fields.Clone()
	delete(doc, FieldParkCode)
	delete(doc, FieldID)
	delete(doc, FieldLegacyID)
	if err := normalizeParkOptionals(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ParkStates splits a park's state_code field, which may encode several
// states comma-joined ("CA,NV").
func ParkStates(doc Document) []string {
	raw, ok := doc.StringField(FieldStateCode)
	if !ok {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = trimmed(p)
		if p != "" {
			out = append(out, strings.ToUpper(p))
		}
	}
	return out
}

func normalizeParkOptionals(doc Document) error {
	if v, present := doc[FieldStateCode]; present && v != nil {
		raw, ok := v.(string)
		if !ok {
			return InvalidInputError{Reason: "state_code must be a string"}
		}
		parts := strings.Split(raw, ",")
		norm := make([]string, 0, len(parts))
		for _, p := range parts {
			p = trimmed(p)
			if p == "" {
				continue
			}
			norm = append(norm, strings.ToUpper(p))
		}
		doc[FieldStateCode] = strings.Join(norm, ",")
	}
	if v, present := doc[FieldLatitude]; present && v != nil {
		lat, ok := doc.FloatField(FieldLatitude)
		if !ok || lat < -90 || lat > 90 {
			return InvalidInputError{Reason: "latitude must be a number in [-90, 90]"}
		}
		doc[FieldLatitude] = lat
	}
	if v, present := doc[FieldLongitude]; present && v != nil {
		lon, ok := doc.FloatField(FieldLongitude)
		if !ok || lon < -180 || lon > 180 {
			return InvalidInputError{Reason: "longitude must be a number in [-180, 180]"}
		}
		doc[FieldLongitude] = lon
	}
	return nil
}
