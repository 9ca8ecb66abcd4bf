package repository

import (
	"context"

	"github.com/gitjits/geodata/internal/domain"
	"github.com/gitjits/geodata/internal/infrastructure/datastore"
)

// StateRepository persists state documents, keyed by the composite
// (state_code, country_code).
type StateRepository struct {
	store *datastore.Store
}

func NewStateRepository(store *datastore.Store) *StateRepository {
	return &StateRepository{store: store}
}

func stateKeyFilter(stateCode, countryCode string) domain.Document {
	return domain.Document{
		domain.FieldStateCode:   stateCode,
		domain.FieldCountryCode: countryCode,
	}
}

// Insert persists a normalized state document, translating a compound
// unique-index violation to the collision error.
func (r *StateRepository) Insert(ctx context.Context, doc domain.Document) error {
	_, err := r.store.Create(ctx, domain.StateCollection, doc)
	if err != nil {
		if datastore.IsDuplicateKey(err) {
			return domain.AlreadyExistsError{Resource: "state"}
		}
		return err
	}
	return nil
}

// FindByKey returns the state with the given normalized composite key,
// or nil when none matches.
func (r *StateRepository) FindByKey(ctx context.Context, stateCode, countryCode string) (domain.Document, error) {
	return r.store.ReadOne(ctx, domain.StateCollection, stateKeyFilter(stateCode, countryCode))
}

// KeyExists reports whether a state with the given normalized composite
// key exists.
func (r *StateRepository) KeyExists(ctx context.Context, stateCode, countryCode string) (bool, error) {
	return r.store.Exists(ctx, domain.StateCollection, stateKeyFilter(stateCode, countryCode))
}

// UpdateByKey merges patch into the state with the given composite key
// and returns the matched count.
func (r *StateRepository) UpdateByKey(ctx context.Context, stateCode, countryCode string, patch domain.Document) (int64, error) {
	return r.store.Update(ctx, domain.StateCollection, stateKeyFilter(stateCode, countryCode), patch)
}

// DeleteByKey removes the state with the given composite key and
// returns the removed count.
func (r *StateRepository) DeleteByKey(ctx context.Context, stateCode, countryCode string) (int64, error) {
	return r.store.Delete(ctx, domain.StateCollection, stateKeyFilter(stateCode, countryCode))
}

// ByCountry returns all states of the given normalized country code.
func (r *StateRepository) ByCountry(ctx context.Context, countryCode string) ([]domain.Document, error) {
	return r.store.ReadMany(ctx, domain.StateCollection, domain.Document{domain.FieldCountryCode: countryCode})
}

// All returns every state.
func (r *StateRepository) All(ctx context.Context) ([]domain.Document, error) {
	return r.store.ReadAll(ctx, domain.StateCollection)
}

// Search returns states matching the field filter.
func (r *StateRepository) Search(ctx context.Context, filter domain.Document) ([]domain.Document, error) {
	return r.store.ReadMany(ctx, domain.StateCollection, filter)
}
