package repository

import (
	"context"

	"github.com/gitjits/geodata/internal/domain"
	"github.com/gitjits/geodata/internal/infrastructure/datastore"
)

// CountryRepository persists country documents, keyed by ISO code.
type CountryRepository struct {
	store *datastore.Store
}

func NewCountryRepository(store *datastore.Store) *CountryRepository {
	return &CountryRepository{store: store}
}

// Insert persists a normalized country document. A unique-index
// violation on code, the losing side of a concurrent create, is
// reported as the same collision error the pre-check produces.
func (r *CountryRepository) Insert(ctx context.Context, doc domain.Document) error {
	_, err := r.store.Create(ctx, domain.CountryCollection, doc)
	if err != nil {
		if datastore.IsDuplicateKey(err) {
			return domain.AlreadyExistsError{Resource: "country"}
		}
		return err
	}
	return nil
}

// FindByCode returns the country with the given normalized code, or nil
// when none matches.
func (r *CountryRepository) FindByCode(ctx context.Context, code string) (domain.Document, error) {
	return r.store.ReadOne(ctx, domain.CountryCollection, domain.Document{domain.FieldCode: code})
}

// CodeExists reports whether a country with the given normalized code
// exists.
func (r *CountryRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	return r.store.Exists(ctx, domain.CountryCollection, domain.Document{domain.FieldCode: code})
}

// UpdateByCode merges patch into the country with the given code and
// returns the matched count.
func (r *CountryRepository) UpdateByCode(ctx context.Context, code string, patch domain.Document) (int64, error) {
	return r.store.Update(ctx, domain.CountryCollection, domain.Document{domain.FieldCode: code}, patch)
}

// DeleteByCode removes the country with the given code and returns the
// removed count.
func (r *CountryRepository) DeleteByCode(ctx context.Context, code string) (int64, error) {
	return r.store.Delete(ctx, domain.CountryCollection, domain.Document{domain.FieldCode: code})
}

// All returns every country.
func (r *CountryRepository) All(ctx context.Context) ([]domain.Document, error) {
	return r.store.ReadAll(ctx, domain.CountryCollection)
}

// Search returns countries matching the field filter.
func (r *CountryRepository) Search(ctx context.Context, filter domain.Document) ([]domain.Document, error) {
	return r.store.ReadMany(ctx, domain.CountryCollection, filter)
}
