package domain

import (
	"strings"
	"unicode/utf8"
)

// Collection name for city documents. Cities have no natural key: they
// are identified by the storage-assigned surrogate id.
const CityCollection = "cities"

// ValidCityID reports whether id looks like a storage surrogate id
// (24 hex characters). Everything arrives over HTTP as a string, so this
// is the only shape check available before hitting the store.
func ValidCityID(id string) bool {
	if len(id) != 24 {
		return false
	}
	for _, r := range id {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// NormalizeCityRegion validates a city's state/province/region code:
// 1-10 characters with at least one letter, so purely numeric or
// symbol-only codes are rejected. Returns the upper-cased form.
func NormalizeCityRegion(code string) (string, error) {
	c := trimmed(code)
	if n := utf8.RuneCountInString(c); n < 1 || n > maxStateCodeLen {
		return "", InvalidInputError{Reason: "state code must be 1-10 characters"}
	}
	if !containsLetter(c) {
		return "", InvalidInputError{Reason: "state code must contain at least one letter"}
	}
	return strings.ToUpper(c), nil
}

// NewCity validates the fields for a new city and returns a normalized
// copy. No uniqueness rule applies: duplicate name+state pairs insert
// distinct surrogate-keyed records.
func NewCity(fields Document) (Document, error) {
	if fields == nil {
		return nil, InvalidInputError{Reason: "city fields are required"}
	}
	name, ok := fields.StringField(FieldName)
	if !ok || trimmed(name) == "" {
		return nil, InvalidInputError{Reason: "city name is required"}
	}
	doc := fields.Clone()
	doc[FieldName] = trimmed(name)
	if err := normalizeCityOptionals(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// CityPatch validates an update patch and returns a normalized copy.
// The surrogate id is immutable and stripped from the patch.
func CityPatch(fields Document) (Document, error) {
	if fields == nil {
		return nil, InvalidInputError{Reason: "update fields are required"}
	}
	doc := fields.Clone()
	delete(doc, FieldID)
	delete(doc, FieldLegacyID)
	if name, ok := doc.StringField(FieldName); ok {
		if trimmed(name) == "" {
			return nil, InvalidInputError{Reason: "city name must not be empty"}
		}
		doc[FieldName] = trimmed(name)
	}
	if err := normalizeCityOptionals(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func normalizeCityOptionals(doc Document) error {
	if v, present := doc[FieldStateCode]; present && v != nil {
		raw, ok := v.(string)
		if !ok {
			return InvalidInputError{Reason: "state_code must be a string"}
		}
		code, err := NormalizeCityRegion(raw)
		if err != nil {
			return err
		}
		doc[FieldStateCode] = code
	}
	if v, present := doc[FieldCountryCode]; present && v != nil {
		raw, ok := v.(string)
		if !ok {
			return InvalidInputError{Reason: "country_code must be a string"}
		}
		code, err := NormalizeCountryCode(raw)
		if err != nil {
			return err
		}
		doc[FieldCountryCode] = code
	}
	return nil
}
