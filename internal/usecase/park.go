package usecase

import (
	"context"
	"fmt"

	"github.com/gitjits/geodata/internal/domain"
	"github.com/gitjits/geodata/internal/infrastructure/cache"
)

// ParkUsecase owns the park business rules: park_code normalization and
// uniqueness.
type ParkUsecase struct {
	repo  ParkRepository
	cache cache.Cache
}

func NewParkUsecase(repo ParkRepository, c cache.Cache) *ParkUsecase {
	return &ParkUsecase{repo: repo, cache: c}
}

// Create validates and persists a new park, returning its normalized
// park_code.
func (uc *ParkUsecase) Create(ctx context.Context, fields domain.Document) (string, error) {
	doc, err := domain.NewPark(fields)
	if err != nil {
		return "", err
	}
	code, _ := doc.StringField(domain.FieldParkCode)

	exists, err := uc.repo.CodeExists(ctx, code)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.AlreadyExistsError{Resource: fmt.Sprintf("park %s", code)}
	}
	if err := uc.repo.Insert(ctx, doc); err != nil {
		return "", err
	}
	uc.cache.Delete(ctx, docKey(domain.ParkCollection, code), listKey(domain.ParkCollection))
	return code, nil
}

// Get returns a park by code; mixed case and surrounding whitespace are
// accepted and normalized away.
func (uc *ParkUsecase) Get(ctx context.Context, code string) (domain.Document, error) {
	norm, err := domain.NormalizeParkCode(code)
	if err != nil {
		return nil, err
	}
	key := docKey(domain.ParkCollection, norm)
	if doc, ok := cachedDoc(ctx, uc.cache, key); ok {
		return doc, nil
	}
	doc, err := uc.repo.FindByCode(ctx, norm)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.NotFoundError{Resource: fmt.Sprintf("park %s", norm)}
	}
	storeDoc(ctx, uc.cache, key, doc)
	return doc, nil
}

// Update merges the patch into the addressed park. The park_code field
// is immutable: it is stripped from the patch before persisting.
func (uc *ParkUsecase) Update(ctx context.Context, code string, fields domain.Document) (string, error) {
	norm, err := domain.NormalizeParkCode(code)
	if err != nil {
		return "", err
	}
	patch, err := domain.ParkPatch(fields)
	if err != nil {
		return "", err
	}
	if len(patch) == 0 {
		exists, err := uc.repo.CodeExists(ctx, norm)
		if err != nil {
			return "", err
		}
		if !exists {
			return "", domain.NotFoundError{Resource: fmt.Sprintf("park %s", norm)}
		}
		return norm, nil
	}
	matched, err := uc.repo.UpdateByCode(ctx, norm, patch)
	if err != nil {
		return "", err
	}
	if matched == 0 {
		return "", domain.NotFoundError{Resource: fmt.Sprintf("park %s", norm)}
	}
	uc.cache.Delete(ctx, docKey(domain.ParkCollection, norm), listKey(domain.ParkCollection))
	return norm, nil
}

// Delete removes the addressed park. The code shape is re-validated
// here even though creation normalized it: callers may pass an
// un-normalized code straight to delete.
func (uc *ParkUsecase) Delete(ctx context.Context, code string) (int64, error) {
	norm, err := domain.NormalizeParkCode(code)
	if err != nil {
		return 0, err
	}
	deleted, err := uc.repo.DeleteByCode(ctx, norm)
	if err != nil {
		return 0, err
	}
	if deleted < 1 {
		return 0, domain.NotFoundError{Resource: fmt.Sprintf("park %s", norm)}
	}
	uc.cache.Delete(ctx, docKey(domain.ParkCollection, norm), listKey(domain.ParkCollection))
	return deleted, nil
}

// ByState returns all parks located in a state, including parks whose
// state_code spans several states.
func (uc *ParkUsecase) ByState(ctx context.Context, stateCode string) ([]domain.Document, error) {
	code, err := domain.NormalizeStateCode(stateCode)
	if err != nil {
		return nil, err
	}
	return uc.repo.ByState(ctx, code)
}

// ByName returns all parks with a matching name or full_name.
func (uc *ParkUsecase) ByName(ctx context.Context, name string) ([]domain.Document, error) {
	return uc.repo.ByName(ctx, name)
}

// All returns every park.
func (uc *ParkUsecase) All(ctx context.Context) ([]domain.Document, error) {
	key := listKey(domain.ParkCollection)
	if docs, ok := cachedList(ctx, uc.cache, key); ok {
		return docs, nil
	}
	docs, err := uc.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	storeList(ctx, uc.cache, key, docs)
	return docs, nil
}

// Search returns parks matching the field filter.
func (uc *ParkUsecase) Search(ctx context.Context, filter domain.Document) ([]domain.Document, error) {
	return uc.repo.Search(ctx, filter)
}
