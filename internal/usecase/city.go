package usecase

import (
	"context"
	"fmt"

	"github.com/gitjits/geodata/internal/domain"
	"github.com/gitjits/geodata/internal/infrastructure/cache"
)

// CityUsecase owns the city business rules. Cities are the only entity
// with surrogate identity and carry no uniqueness invariant: creating
// the same name+state twice yields two records with distinct ids.
type CityUsecase struct {
	repo  CityRepository
	cache cache.Cache
}

func NewCityUsecase(repo CityRepository, c cache.Cache) *CityUsecase {
	return &CityUsecase{repo: repo, cache: c}
}

// Create validates and persists a new city, returning the
// storage-assigned id.
func (uc *CityUsecase) Create(ctx context.Context, fields domain.Document) (string, error) {
	doc, err := domain.NewCity(fields)
	if err != nil {
		return "", err
	}
	id, err := uc.repo.Insert(ctx, doc)
	if err != nil {
		return "", err
	}
	uc.cache.Delete(ctx, listKey(domain.CityCollection))
	return id, nil
}

// Get returns a city by surrogate id.
func (uc *CityUsecase) Get(ctx context.Context, id string) (domain.Document, error) {
	if !domain.ValidCityID(id) {
		return nil, domain.InvalidInputError{Reason: "malformed city id"}
	}
	key := docKey(domain.CityCollection, id)
	if doc, ok := cachedDoc(ctx, uc.cache, key); ok {
		return doc, nil
	}
	doc, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.NotFoundError{Resource: fmt.Sprintf("city %s", id)}
	}
	storeDoc(ctx, uc.cache, key, doc)
	return doc, nil
}

// Update merges the patch into the addressed city.
func (uc *CityUsecase) Update(ctx context.Context, id string, fields domain.Document) (string, error) {
	if !domain.ValidCityID(id) {
		return "", domain.InvalidInputError{Reason: "malformed city id"}
	}
	patch, err := domain.CityPatch(fields)
	if err != nil {
		return "", err
	}
	if len(patch) == 0 {
		doc, err := uc.repo.FindByID(ctx, id)
		if err != nil {
			return "", err
		}
		if doc == nil {
			return "", domain.NotFoundError{Resource: fmt.Sprintf("city %s", id)}
		}
		return id, nil
	}
	matched, err := uc.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		return "", err
	}
	if matched == 0 {
		return "", domain.NotFoundError{Resource: fmt.Sprintf("city %s", id)}
	}
	uc.cache.Delete(ctx, docKey(domain.CityCollection, id), listKey(domain.CityCollection))
	return id, nil
}

// Delete removes the addressed city and returns the removed count.
func (uc *CityUsecase) Delete(ctx context.Context, id string) (int64, error) {
	if !domain.ValidCityID(id) {
		return 0, domain.InvalidInputError{Reason: "malformed city id"}
	}
	deleted, err := uc.repo.DeleteByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if deleted < 1 {
		return 0, domain.NotFoundError{Resource: fmt.Sprintf("city %s", id)}
	}
	uc.cache.Delete(ctx, docKey(domain.CityCollection, id), listKey(domain.CityCollection))
	return deleted, nil
}

// ByState returns all cities of a state/province/region,
// case-insensitively.
func (uc *CityUsecase) ByState(ctx context.Context, stateCode string) ([]domain.Document, error) {
	code, err := domain.NormalizeCityRegion(stateCode)
	if err != nil {
		return nil, err
	}
	return uc.repo.ByState(ctx, code)
}

// ByName returns all cities with a matching name.
func (uc *CityUsecase) ByName(ctx context.Context, name string) ([]domain.Document, error) {
	return uc.repo.ByName(ctx, name)
}

// All returns every city.
func (uc *CityUsecase) All(ctx context.Context) ([]domain.Document, error) {
	key := listKey(domain.CityCollection)
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

// Search returns cities matching the field filter.
func (uc *CityUsecase) Search(ctx context.Context, filter domain.Document) ([]domain.Document, error) {
	return uc.repo.Search(ctx, filter)
}
