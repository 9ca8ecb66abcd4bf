package repository

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gitjits/geodata/internal/domain"
	"github.com/gitjits/geodata/internal/infrastructure/datastore"
)

// CityRepository persists city documents. Cities carry no natural key;
// the storage surrogate id is their identity, so reads keep the id on
// the returned document.
type CityRepository struct {
	store *datastore.Store
}

func NewCityRepository(store *datastore.Store) *CityRepository {
	return &CityRepository{store: store}
}

func cityIDFilter(id string) (domain.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.InvalidInputError{Reason: "malformed city id"}
	}
	return domain.Document{"_id": oid}, nil
}

// Insert persists a city document and returns the assigned surrogate
// id. Ids are never reused.
func (r *CityRepository) Insert(ctx context.Context, doc domain.Document) (string, error) {
	return r.store.Create(ctx, domain.CityCollection, doc)
}

// FindByID returns the city with the given surrogate id, or nil when
// none matches.
func (r *CityRepository) FindByID(ctx context.Context, id string) (domain.Document, error) {
	filter, err := cityIDFilter(id)
	if err != nil {
		return nil, err
	}
	return r.store.ReadOne(ctx, domain.CityCollection, filter, datastore.WithID())
}

// UpdateByID merges patch into the city with the given surrogate id and
// returns the matched count.
func (r *CityRepository) UpdateByID(ctx context.Context, id string, patch domain.Document) (int64, error) {
	filter, err := cityIDFilter(id)
	if err != nil {
		return 0, err
	}
	return r.store.Update(ctx, domain.CityCollection, filter, patch)
}

// DeleteByID removes the city with the given surrogate id and returns
// the removed count.
func (r *CityRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	filter, err := cityIDFilter(id)
	if err != nil {
		return 0, err
	}
	return r.store.Delete(ctx, domain.CityCollection, filter)
}

// ByState returns all cities of the given normalized region code.
// Region codes are stored upper-cased, so an exact filter suffices.
func (r *CityRepository) ByState(ctx context.Context, stateCode string) ([]domain.Document, error) {
	return r.store.ReadMany(ctx, domain.CityCollection,
		domain.Document{domain.FieldStateCode: stateCode}, datastore.WithID())
}

// ByName returns all cities whose name matches case-insensitively.
// Names keep their original casing, so this scans rather than filters.
func (r *CityRepository) ByName(ctx context.Context, name string) ([]domain.Document, error) {
	all, err := r.store.ReadAll(ctx, domain.CityCollection, datastore.WithID())
	if err != nil {
		return nil, err
	}
	var out []domain.Document
	for _, doc := range all {
		if n, ok := doc.StringField(domain.FieldName); ok && strings.EqualFold(strings.TrimSpace(n), strings.TrimSpace(name)) {
			out = append(out, doc)
		}
	}
	return out, nil
}

// All returns every city, id included.
func (r *CityRepository) All(ctx context.Context) ([]domain.Document, error) {
	return r.store.ReadAll(ctx, domain.CityCollection, datastore.WithID())
}

// Search returns cities matching the field filter.
func (r *CityRepository) Search(ctx context.Context, filter domain.Document) ([]domain.Document, error) {
	return r.store.ReadMany(ctx, domain.CityCollection, filter, datastore.WithID())
}
