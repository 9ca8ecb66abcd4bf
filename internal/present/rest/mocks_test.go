package rest

import (
	"context"
	"fmt"

	"github.com/gitjits/geodata/internal/domain"
)

// In-memory repository fakes backing the handler tests.

type fakeCountryRepo struct {
	docs    map[string]domain.Document
	failAll error
}

func newFakeCountryRepo() *fakeCountryRepo {
	return &fakeCountryRepo{docs: map[string]domain.Document{}}
}

func (f *fakeCountryRepo) Insert(ctx context.Context, doc domain.Document) error {
	code, _ := doc.StringField(domain.FieldCode)
	if _, ok := f.docs[code]; ok {
		return domain.AlreadyExistsError{Resource: "country"}
	}
	f.docs[code] = doc.Clone()
	return nil
}

func (f *fakeCountryRepo) FindByCode(ctx context.Context, code string) (domain.Document, error) {
	doc, ok := f.docs[code]
	if !ok {
		return nil, nil
	}
	return doc.Clone(), nil
}

func (f *fakeCountryRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	_, ok := f.docs[code]
	return ok, nil
}

func (f *fakeCountryRepo) UpdateByCode(ctx context.Context, code string, patch domain.Document) (int64, error) {
	doc, ok := f.docs[code]
	if !ok {
		return 0, nil
	}
	for k, v := range patch {
		doc[k] = v
	}
	return 1, nil
}

func (f *fakeCountryRepo) DeleteByCode(ctx context.Context, code string) (int64, error) {
	if _, ok := f.docs[code]; !ok {
		return 0, nil
	}
	delete(f.docs, code)
	return 1, nil
}

func (f *fakeCountryRepo) All(ctx context.Context) ([]domain.Document, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	out := make([]domain.Document, 0, len(f.docs))
	for _, doc := range f.docs {
		out = append(out, doc.Clone())
	}
	return out, nil
}

func (f *fakeCountryRepo) Search(ctx context.Context, filter domain.Document) ([]domain.Document, error) {
	var out []domain.Document
	for _, doc := range f.docs {
		if filterMatches(doc, filter) {
			out = append(out, doc.Clone())
		}
	}
	return out, nil
}

type fakeStateRepo struct {
	docs map[string]domain.Document
}

func newFakeStateRepo() *fakeStateRepo {
	return &fakeStateRepo{docs: map[string]domain.Document{}}
}

func compositeKey(stateCode, countryCode string) string {
	return stateCode + "|" + countryCode
}

func (f *fakeStateRepo) Insert(ctx context.Context, doc domain.Document) error {
	sc, _ := doc.StringField(domain.FieldStateCode)
	cc, _ := doc.StringField(domain.FieldCountryCode)
	key := compositeKey(sc, cc)
	if _, ok := f.docs[key]; ok {
		return domain.AlreadyExistsError{Resource: "state"}
	}
	f.docs[key] = doc.Clone()
	return nil
}

func (f *fakeStateRepo) FindByKey(ctx context.Context, stateCode, countryCode string) (domain.Document, error) {
	doc, ok := f.docs[compositeKey(stateCode, countryCode)]
	if !ok {
		return nil, nil
	}
	return doc.Clone(), nil
}

func (f *fakeStateRepo) KeyExists(ctx context.Context, stateCode, countryCode string) (bool, error) {
	_, ok := f.docs[compositeKey(stateCode, countryCode)]
	return ok, nil
}

func (f *fakeStateRepo) UpdateByKey(ctx context.Context, stateCode, countryCode string, patch domain.Document) (int64, error) {
	doc, ok := f.docs[compositeKey(stateCode, countryCode)]
	if !ok {
		return 0, nil
	}
	for k, v := range patch {
		doc[k] = v
	}
	return 1, nil
}

func (f *fakeStateRepo) DeleteByKey(ctx context.Context, stateCode, countryCode string) (int64, error) {
	key := compositeKey(stateCode, countryCode)
	if _, ok := f.docs[key]; !ok {
		return 0, nil
	}
	delete(f.docs, key)
	return 1, nil
}

func (f *fakeStateRepo) ByCountry(ctx context.Context, countryCode string) ([]domain.Document, error) {
	var out []domain.Document
	for _, doc := range f.docs {
		if cc, _ := doc.StringField(domain.FieldCountryCode); cc == countryCode {
			out = append(out, doc.Clone())
		}
	}
	return out, nil
}

func (f *fakeStateRepo) All(ctx context.Context) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(f.docs))
	for _, doc := range f.docs {
		out = append(out, doc.Clone())
	}
	return out, nil
}

func (f *fakeStateRepo) Search(ctx context.Context, filter domain.Document) ([]domain.Document, error) {
	var out []domain.Document
	for _, doc := range f.docs {
		if filterMatches(doc, filter) {
			out = append(out, doc.Clone())
		}
	}
	return out, nil
}

type fakeCityRepo struct {
	docs map[string]domain.Document
	next int
}

func newFakeCityRepo() *fakeCityRepo {
	return &fakeCityRepo{docs: map[string]domain.Document{}}
}

func (f *fakeCityRepo) Insert(ctx context.Context, doc domain.Document) (string, error) {
	f.next++
	id := fmt.Sprintf("%024x", f.next)
	f.docs[id] = doc.Clone()
	return id, nil
}

func (f *fakeCityRepo) FindByID(ctx context.Context, id string) (domain.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	out := doc.Clone()
	out["_id"] = id
	return out, nil
}

func (f *fakeCityRepo) UpdateByID(ctx context.Context, id string, patch domain.Document) (int64, error) {
	doc, ok := f.docs[id]
	if !ok {
		return 0, nil
	}
	for k, v := range patch {
		doc[k] = v
	}
	return 1, nil
}

func (f *fakeCityRepo) DeleteByID(ctx context.Context, id string) (int64, error) {
	if _, ok := f.docs[id]; !ok {
		return 0, nil
	}
	delete(f.docs, id)
	return 1, nil
}

func (f *fakeCityRepo) ByState(ctx context.Context, stateCode string) ([]domain.Document, error) {
	var out []domain.Document
	for id, doc := range f.docs {
		if sc, _ := doc.StringField(domain.FieldStateCode); sc == stateCode {
			withID := doc.Clone()
			withID["_id"] = id
			out = append(out, withID)
		}
	}
	return out, nil
}

func (f *fakeCityRepo) ByName(ctx context.Context, name string) ([]domain.Document, error) {
	var out []domain.Document
	for id, doc := range f.docs {
		if n, _ := doc.StringField(domain.FieldName); n == name {
			withID := doc.Clone()
			withID["_id"] = id
			out = append(out, withID)
		}
	}
	return out, nil
}

func (f *fakeCityRepo) All(ctx context.Context) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(f.docs))
	for id, doc := range f.docs {
		withID := doc.Clone()
		withID["_id"] = id
		out = append(out, withID)
	}
	return out, nil
}

func (f *fakeCityRepo) Search(ctx context.Context, filter domain.Document) ([]domain.Document, error) {
	var out []domain.Document
	for _, doc := range f.docs {
		if filterMatches(doc, filter) {
			out = append(out, doc.Clone())
		}
	}
	return out, nil
}

type fakeParkRepo struct {
	docs map[string]domain.Document
}

func newFakeParkRepo() *fakeParkRepo {
	return &fakeParkRepo{docs: map[string]domain.Document{}}
}

func (f *fakeParkRepo) Insert(ctx context.Context, doc domain.Document) error {
	code, _ := doc.StringField(domain.FieldParkCode)
	if _, ok := f.docs[code]; ok {
		return domain.AlreadyExistsError{Resource: "park"}
	}
	f.docs[code] = doc.Clone()
	return nil
}

func (f *fakeParkRepo) FindByCode(ctx context.Context, code string) (domain.Document, error) {
	doc, ok := f.docs[code]
	if !ok {
		return nil, nil
	}
	return doc.Clone(), nil
}

func (f *fakeParkRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	_, ok := f.docs[code]
	return ok, nil
}

func (f *fakeParkRepo) UpdateByCode(ctx context.Context, code string, patch domain.Document) (int64, error) {
	doc, ok := f.docs[code]
	if !ok {
		return 0, nil
	}
	for k, v := range patch {
		doc[k] = v
	}
	return 1, nil
}

func (f *fakeParkRepo) DeleteByCode(ctx context.Context, code string) (int64, error) {
	if _, ok := f.docs[code]; !ok {
		return 0, nil
	}
	delete(f.docs, code)
	return 1, nil
}

func (f *fakeParkRepo) ByState(ctx context.Context, stateCode string) ([]domain.Document, error) {
	var out []domain.Document
	for _, doc := range f.docs {
		for _, s := range domain.ParkStates(doc) {
			if s == stateCode {
				out = append(out, doc.Clone())
				break
			}
		}
	}
	return out, nil
}

func (f *fakeParkRepo) ByName(ctx context.Context, name string) ([]domain.Document, error) {
	var out []domain.Document
	for _, doc := range f.docs {
		n, _ := doc.StringField(domain.FieldName)
		fn, _ := doc.StringField(domain.FieldFullName)
		if n == name || fn == name {
			out = append(out, doc.Clone())
		}
	}
	return out, nil
}

func (f *fakeParkRepo) All(ctx context.Context) ([]domain.Document, error) {
	out := make([]domain.Document, 0, len(f.docs))
	for _, doc := range f.docs {
		out = append(out, doc.Clone())
	}
	return out, nil
}

func (f *fakeParkRepo) Search(ctx context.Context, filter domain.Document) ([]domain.Document, error) {
	var out []domain.Document
	for _, doc := range f.docs {
		if filterMatches(doc, filter) {
			out = append(out, doc.Clone())
		}
	}
	return out, nil
}

func filterMatches(doc, filter domain.Document) bool {
	for k, v := range filter {
		if doc[k] != v {
			return false
		}
	}
	return true
}
