package domain

import (
	"strings"
	"unicode/utf8"
)

// Collection and field names for country documents.
const (
	CountryCollection = "countries"

	FieldName       = "name"
	FieldCode       = "code"
	FieldCapital    = "capital"
	FieldPopulation = "population"
	FieldContinent  = "continent"
)

const (
	minCountryCodeLen = 2
	maxCountryCodeLen = 3
)

// NormalizeCountryCode trims and upper-cases an ISO country code.
// Codes are 2-3 alphabetic characters, e.g. US, CA, UK.
func NormalizeCountryCode(code string) (string, error) {
	c := trimmed(code)
	n := utf8.RuneCountInString(c)
	if n < minCountryCodeLen || n > maxCountryCodeLen || !isAlpha(c) {
		return "", InvalidInputError{Reason: "country code must be 2-3 letters"}
	}
	return strings.ToUpper(c), nil
}

// NewCountry validates the fields for a new country and returns a
// normalized copy. The input map is never mutated.
func NewCountry(fields Document) (Document, error) {
	if fields == nil {
		return nil, InvalidInputError{Reason: "country fields are required"}
	}
	name, ok := fields.StringField(FieldName)
	if !ok || trimmed(name) == "" {
		return nil, InvalidInputError{Reason: "country name is required"}
	}
	rawCode, ok := fields.StringField(FieldCode)
	if !ok {
		return nil, InvalidInputError{Reason: "country code is required"}
	}
	code, err := NormalizeCountryCode(rawCode)
	if err != nil {
		return nil, err
	}

	doc := fields.Clone()
	doc[FieldName] = trimmed(name)
	doc[FieldCode] = code
	if err := normalizeCountryOptionals(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// CountryPatch validates an update patch and returns a normalized copy
// with the business key stripped: code is immutable after creation.
func CountryPatch(fields Document) (Document, error) {
	if fields == nil {
		return nil, InvalidInputError{Reason: "update fields are required"}
	}
	doc := fields.Clone()
	delete(doc, FieldCode)
	delete(doc, FieldID)
	delete(doc, FieldLegacyID)
	if name, ok := doc.StringField(FieldName); ok {
		if trimmed(name) == "" {
			return nil, InvalidInputError{Reason: "country name must not be empty"}
		}
		doc[FieldName] = trimmed(name)
	}
	if err := normalizeCountryOptionals(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func normalizeCountryOptionals(doc Document) error {
	if v, present := doc[FieldPopulation]; present && v != nil {
		n, ok := doc.IntField(FieldPopulation)
		if !ok {
			return InvalidInputError{Reason: "population must be an integer"}
		}
		doc[FieldPopulation] = n
	}
	for _, key := range []string{FieldCapital, FieldContinent} {
		if v, present := doc[key]; present && v != nil {
			if _, ok := v.(string); !ok {
				return InvalidInputError{Reason: key + " must be a string"}
			}
		}
	}
	return nil
}
