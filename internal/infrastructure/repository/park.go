package repository

import (
	"context"
	"strings"

	"github.com/gitjits/geodata/internal/domain"
	"github.com/gitjits/geodata/internal/infrastructure/datastore"
)

// ParkRepository persists park documents, keyed by the lower-cased
// park_code.
type ParkRepository struct {
	store *datastore.Store
}

func NewParkRepository(store *datastore.Store) *ParkRepository {
	return &ParkRepository{store: store}
}

// Insert persists a normalized park document, translating a unique-index
// violation on park_code to the collision error.
func (r *ParkRepository) Insert(ctx context.Context, doc domain.Document) error {
	_, err := r.store.Create(ctx, domain.ParkCollection, doc)
	if err != nil {
		if datastore.IsDuplicateKey(err) {
			return domain.AlreadyExistsError{Resource: "park"}
		}
		return err
	}
	return nil
}

// FindByCode returns the park with the given normalized code, or nil
// when none matches.
func (r *ParkRepository) FindByCode(ctx context.Context, code string) (domain.Document, error) {
	return r.store.ReadOne(ctx, domain.ParkCollection, domain.Document{domain.FieldParkCode: code})
}

// CodeExists reports whether a park with the given normalized code
// exists.
func (r *ParkRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	return r.store.Exists(ctx, domain.ParkCollection, domain.Document{domain.FieldParkCode: code})
}

// UpdateByCode merges patch into the park with the given code and
// returns the matched count.
func (r *ParkRepository) UpdateByCode(ctx context.Context, code string, patch domain.Document) (int64, error) {
	return r.store.Update(ctx, domain.ParkCollection, domain.Document{domain.FieldParkCode: code}, patch)
}

// DeleteByCode removes the park with the given code and returns the
// removed count.
func (r *ParkRepository) DeleteByCode(ctx context.Context, code string) (int64, error) {
	return r.store.Delete(ctx, domain.ParkCollection, domain.Document{domain.FieldParkCode: code})
}

// ByState returns all parks located in the given normalized state code.
// A park's state_code may encode several states comma-joined, so this
// scans and splits instead of filtering in the store.
func (r *ParkRepository) ByState(ctx context.Context, stateCode string) ([]domain.Document, error) {
	all, err := r.store.ReadAll(ctx, domain.ParkCollection)
	if err != nil {
		return nil, err
	}
	var out []domain.Document
	for _, doc := range all {
		for _, s := range domain.ParkStates(doc) {
			if s == stateCode {
				out = append(out, doc)
				break
			}
		}
	}
	return out, nil
}

// ByName returns all parks whose name or full_name matches
// case-insensitively.
func (r *ParkRepository) ByName(ctx context.Context, name string) ([]domain.Document, error) {
	all, err := r.store.ReadAll(ctx, domain.ParkCollection)
	if err != nil {
		return nil, err
	}
	want := strings.TrimSpace(name)
	var out []domain.Document
	for _, doc := range all {
		n, _ := doc.StringField(domain.FieldName)
		fn, _ := doc.StringField(domain.FieldFullName)
		if strings.EqualFold(strings.TrimSpace(n), want) || strings.EqualFold(strings.TrimSpace(fn), want) {
			out = append(out, doc)
		}
	}
	return out, nil
}

// All returns every park.
func (r *ParkRepository) All(ctx context.Context) ([]domain.Document, error) {
	return r.store.ReadAll(ctx, domain.ParkCollection)
}

// Search returns parks matching the field filter.
func (r *ParkRepository) Search(ctx context.Context, filter domain.Document) ([]domain.Document, error) {
	return r.store.ReadMany(ctx, domain.ParkCollection, filter)
}
