package usecase

import (
	"context"
	"fmt"

	"github.com/gitjits/geodata/internal/domain"
)

// In-memory repository fakes backing the usecase tests.

type memCountryRepo struct {
	docs map[string]domain.Document
}

func newMemCountryRepo() *memCountryRepo {
	return &memCountryRepo{docs: map[string]domain.Document{}}
}

func (m *memCountryRepo) Insert(ctx context.Context, doc domain.Document) error {
	code, _ := doc.StringField(domain.FieldCode)
	if _, ok := m.docs[code]; ok {
		return domain.AlreadyExistsError{Resource: "country"}
	}
	m.docs[code] = doc.Clone()
	return nil
}

func (m *memCountryRepo) FindByCode(ctx context.Context, code string) (domain.Document, error) {
	doc, ok := m.docs[code]
	if !ok {
		return nil, nil
	}
	return doc.Clone(), nil
}

func (m *memCountryRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	_, ok := m.docs[code]
	return ok, nil
}

func (m *memCountryRepo) UpdateByCode(ctx context.Context, code string, patch domain.Document) (int64, error) {
	doc, ok := m.docs[code]
	if !ok {
		return 0, nil
	}
	for k, v := range patch {
		doc[k] = v
	}
	return 1, nil
}

func (m *memCountryRepo) DeleteByCode(ctx context.Context, code string) (int64, error) {
	if _, ok := m.docs[code]; !ok {
		return 0, nil
	}
	delete(m.docs, code)
	return 1, nil
}

func (m *memCountryRepo) All(ctx context.Context) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(m.docs))
	for _, doc := range m.docs {
		out = append(out, doc.Clone())
	}
	return out, nil
}

func (m *memCountryRepo) Search(ctx context.Context, filter domain.Document) ([]domain.Document, error) {
	var out []domain.Document
	for _, doc := range m.docs {
		if matches(doc, filter) {
			out = append(out, doc.Clone())
		}
	}
	return out, nil
}

type memStateRepo struct {
	docs map[string]domain.Document
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{docs: map[string]domain.Document{}}
}

func stateKey(stateCode, countryCode string) string {
	return stateCode + "|" + countryCode
}

func (m *memStateRepo) Insert(ctx context.Context, doc domain.Document) error {
	sc, _ := doc.StringField(domain.FieldStateCode)
	cc, _ := doc.StringField(domain.FieldCountryCode)
	key := stateKey(sc, cc)
	if _, ok := m.docs[key]; ok {
		return domain.AlreadyExistsError{Resource: "state"}
	}
	m.docs[key] = doc.Clone()
	return nil
}

func (m *memStateRepo) FindByKey(ctx context.Context, stateCode, countryCode string) (domain.Document, error) {
	doc, ok := m.docs[stateKey(stateCode, countryCode)]
	if !ok {
		return nil, nil
	}
	return doc.Clone(), nil
}

func (m *memStateRepo) KeyExists(ctx context.Context, stateCode, countryCode string) (bool, error) {
	_, ok := m.docs[stateKey(stateCode, countryCode)]
	return ok, nil
}

func (m *memStateRepo) UpdateByKey(ctx context.Context, stateCode, countryCode string, patch domain.Document) (int64, error) {
	doc, ok := m.docs[stateKey(stateCode, countryCode)]
	if !ok {
		return 0, nil
	}
	for k, v := range patch {
		doc[k] = v
	}
	return 1, nil
}

func (m *memStateRepo) DeleteByKey(ctx context.Context, stateCode, countryCode string) (int64, error) {
	key := stateKey(stateCode, countryCode)
	if _, ok := m.docs[key]; !ok {
		return 0, nil
	}
	delete(m.docs, key)
	return 1, nil
}

func (m *memStateRepo) ByCountry(ctx context.Context, countryCode string) ([]domain.Document, error) {
	var out []domain.Document
	for _, doc := range m.docs {
		if cc, _ := doc.StringField(domain.FieldCountryCode); cc == countryCode {
			out = append(out, doc.Clone())
		}
	}
	return out, nil
}

func (m *memStateRepo) All(ctx context.Context) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(m.docs))
	for _, doc := range m.docs {
		out = append(out, doc.Clone())
	}
	return out, nil
}

func (m *memStateRepo) Search(ctx context.Context, filter domain.Document) ([]domain.Document, error) {
	var out []domain.Document
	for _, doc := range m.docs {
		if matches(doc, filter) {
			out = append(out, doc.Clone())
		}
	}
	return out, nil
}

type memCityRepo struct {
	docs map[string]domain.Document
	next int
}

func newMemCityRepo() *memCityRepo {
	return &memCityRepo{docs: map[string]domain.Document{}}
}

func (m *memCityRepo) Insert(ctx context.Context, doc domain.Document) (string, error) {
	m.next++
	id := fmt.Sprintf("%024x", m.next)
	m.docs[id] = doc.Clone()
	return id, nil
}

func (m *memCityRepo) FindByID(ctx context.Context, id string) (domain.Document, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	out := doc.Clone()
	out["_id"] = id
	return out, nil
}

func (m *memCityRepo) UpdateByID(ctx context.Context, id string, patch domain.Document) (int64, error) {
	doc, ok := m.docs[id]
	if !ok {
		return 0, nil
	}
	for k, v := range patch {
		doc[k] = v
	}
	return 1, nil
}

func (m *memCityRepo) DeleteByID(ctx context.Context, id string) (int64, error) {
	if _, ok := m.docs[id]; !ok {
		return 0, nil
	}
	delete(m.docs, id)
	return 1, nil
}

func (m *memCityRepo) ByState(ctx context.Context, stateCode string) ([]domain.Document, error) {
	var out []domain.Document
	for id, doc := range m.docs {
		if sc, _ := doc.StringField(domain.FieldStateCode); sc == stateCode {
			withID := doc.Clone()
			withID["_id"] = id
			out = append(out, withID)
		}
	}
	return out, nil
}

func (m *memCityRepo) ByName(ctx context.Context, name string) ([]domain.Document, error) {
	var out []domain.Document
	for id, doc := range m.docs {
		if n, _ := doc.StringField(domain.FieldName); n == name {
			withID := doc.Clone()
			withID["_id"] = id
			out = append(out, withID)
		}
	}
	return out, nil
}

func (m *memCityRepo) All(ctx context.Context) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(m.docs))
	for id, doc := range m.docs {
		withID := doc.Clone()
		withID["_id"] = id
		out = append(out, withID)
	}
	return out, nil
}

func (m *memCityRepo) Search(ctx context.Context, filter domain.Document) ([]domain.Document, error) {
	var out []domain.Document
	for _, doc := range m.docs {
		if matches(doc, filter) {
			out = append(out, doc.Clone())
		}
	}
	return out, nil
}

type memParkRepo struct {
	docs map[string]domain.Document
}

func newMemParkRepo() *memParkRepo {
	return &memParkRepo{docs: map[string]domain.Document{}}
}

func (m *memParkRepo) Insert(ctx context.Context, doc domain.Document) error {
	code, _ := doc.StringField(domain.FieldParkCode)
	if _, ok := m.docs[code]; ok {
		return domain.AlreadyExistsError{Resource: "park"}
	}
	m.docs[code] = doc.Clone()
	return nil
}

func (m *memParkRepo) FindByCode(ctx context.Context, code string) (domain.Document, error) {
	doc, ok := m.docs[code]
	if !ok {
		return nil, nil
	}
	return doc.Clone(), nil
}

func (m *memParkRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	_, ok := m.docs[code]
	return ok, nil
}

func (m *memParkRepo) UpdateByCode(ctx context.Context, code string, patch domain.Document) (int64, error) {
	doc, ok := m.docs[code]
	if !ok {
		return 0, nil
	}
	for k, v := range patch {
		doc[k] = v
	}
	return 1, nil
}

func (m *memParkRepo) DeleteByCode(ctx context.Context, code string) (int64, error) {
	if _, ok := m.docs[code]; !ok {
		return 0, nil
	}
	delete(m.docs, code)
	return 1, nil
}

func (m *memParkRepo) ByState(ctx context.Context, stateCode string) ([]domain.Document, error) {
	var out []domain.Document
	for _, doc := range m.docs {
		for _, s := range domain.ParkStates(doc) {
			if s == stateCode {
				out = append(out, doc.Clone())
				break
			}
		}
	}
	return out, nil
}

func (m *memParkRepo) ByName(ctx context.Context, name string) ([]domain.Document, error) {
	var out []domain.Document
	for _, doc := range m.docs {
		n, _ := doc.StringField(domain.FieldName)
		fn, _ := doc.StringField(domain.FieldFullName)
		if n == name || fn == name {
			out = append(out, doc.Clone())
		}
	}
	return out, nil
}

func (m *memParkRepo) All(ctx context.Context) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(m.docs))
	for _, doc := range m.docs {
		out = append(out, doc.Clone())
	}
	return out, nil
}

func (m *memParkRepo) Search(ctx context.Context, filter domain.Document) ([]domain.Document, error) {
	var out []domain.Document
	for _, doc := range m.docs {
		if matches(doc, filter) {
			out = append(out, doc.Clone())
		}
	}
	return out, nil
}

func matches(doc, filter domain.Document) bool {
	for k, v := range filter {
		if doc[k] != v {
			return false
		}
	}
	return true
}
