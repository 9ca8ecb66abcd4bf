package domain

import (
	"strings"
	"unicode/utf8"
)

// Collection and field names for state documents. States are addressed
// by the composite key (state_code, country_code).
const (
	StateCollection = "states"

	FieldStateCode   = "state_code"
	FieldCountryCode = "country_code"
	FieldLatitude    = "latitude"
	FieldLongitude   = "longitude"
)

const maxStateCodeLen = 10

// NormalizeStateCode trims and upper-cases a state/province/region code.
// Codes are kept loose to stay international-friendly: 1-10 characters,
// no stricter grammar.
func NormalizeStateCode(code string) (string, error) {
	c := trimmed(code)
	if n := utf8.RuneCountInString(c); n < 1 || n > maxStateCodeLen {
		return "", InvalidInputError{Reason: "state code must be 1-10 characters"}
	}
	return strings.ToUpper(c), nil
}

// NewState validates the fields for a new state and returns a normalized
// copy with both key fields upper-cased. The input map is never mutated.
func NewState(fields Document) (Document, error) {
	if fields == nil {
		return nil, InvalidInputError{Reason: "state fields are required"}
	}
	name, ok := fields.StringField(FieldName)
	if !ok || trimmed(name) == "" {
		return nil, InvalidInputError{Reason: "state name is required"}
	}
	rawState, ok := fields.StringField(FieldStateCode)
	if !ok {
		return nil, InvalidInputError{Reason: "state_code is required"}
	}
	stateCode, err := NormalizeStateCode(rawState)
	if err != nil {
		return nil, err
	}
	rawCountry, ok := fields.StringField(FieldCountryCode)
	if !ok {
		return nil, InvalidInputError{Reason: "country_code is required"}
	}
	countryCode, err := NormalizeCountryCode(rawCountry)
	if err != nil {
		return nil, err
	}

	doc := fields.Clone()
	doc[FieldName] = trimmed(name)
	doc[FieldStateCode] = stateCode
	doc[FieldCountryCode] = countryCode
	if err := normalizeStateOptionals(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// StatePatch validates an update patch and returns a normalized copy.
// The composite key fields are stripped: they are immutable after
// creation.
func StatePatch(fields Document) (Document, error) {
	if fields == nil {
		return nil, InvalidInputError{Reason: "update fields are required"}
	}
	doc := fields.Clone()
	delete(doc, FieldStateCode)
	delete(doc, FieldCountryCode)
	delete(doc, FieldID)
	delete(doc, FieldLegacyID)
	if name, ok := doc.StringField(FieldName); ok {
		if trimmed(name) == "" {
			return nil, InvalidInputError{Reason: "state name must not be empty"}
		}
		doc[FieldName] = trimmed(name)
	}
	if err := normalizeStateOptionals(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func normalizeStateOptionals(doc Document) error {
	if v, present := doc[FieldPopulation]; present && v != nil {
		n, ok := doc.IntField(FieldPopulation)
		if !ok {
			return InvalidInputError{Reason: "population must be an integer"}
		}
		doc[FieldPopulation] = n
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
	if v, present := doc[FieldCapital]; present && v != nil {
		if _, ok := v.(string); !ok {
			return InvalidInputError{Reason: "capital must be a string"}
		}
	}
	return nil
}
