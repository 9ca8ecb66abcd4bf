package usecase

import (
	"context"
	"fmt"

	"github.com/gitjits/geodata/internal/domain"
	"github.com/gitjits/geodata/internal/infrastructure/cache"
)

// CountryUsecase owns the country business rules: validation,
// normalization and the code uniqueness invariant. The existence
// pre-check gives a friendly collision error; the unique index behind
// the repository is the actual guarantee.
type CountryUsecase struct {
	repo  CountryRepository
	cache cache.Cache
}

func NewCountryUsecase(repo CountryRepository, c cache.Cache) *CountryUsecase {
	return &CountryUsecase{repo: repo, cache: c}
}

// Create validates and persists a new country, returning its normalized
// code.
func (uc *CountryUsecase) Create(ctx context.Context, fields domain.Document) (string, error) {
	doc, err := domain.NewCountry(fields)
	if err != nil {
		return "", err
	}
	code, _ := doc.StringField(domain.FieldCode)

	exists, err := uc.repo.CodeExists(ctx, code)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.AlreadyExistsError{Resource: fmt.Sprintf("country %s", code)}
	}
	if err := uc.repo.Insert(ctx, doc); err != nil {
		return "", err
	}
	uc.cache.Delete(ctx, docKey(domain.CountryCollection, code), listKey(domain.CountryCollection))
	return code, nil
}

// Get returns a country by code; lookups are case-insensitive by
// normalizing the supplied code first.
func (uc *CountryUsecase) Get(ctx context.Context, code string) (domain.Document, error) {
	norm, err := domain.NormalizeCountryCode(code)
	if err != nil {
		return nil, err
	}
	key := docKey(domain.CountryCollection, norm)
	if doc, ok := cachedDoc(ctx, uc.cache, key); ok {
		return doc, nil
	}
	doc, err := uc.repo.FindByCode(ctx, norm)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.NotFoundError{Resource: fmt.Sprintf("country %s", norm)}
	}
	storeDoc(ctx, uc.cache, key, doc)
	return doc, nil
}

// Exists reports whether a country with the given code exists.
func (uc *CountryUsecase) Exists(ctx context.Context, code string) (bool, error) {
	norm, err := domain.NormalizeCountryCode(code)
	if err != nil {
		return false, err
	}
	return uc.repo.CodeExists(ctx, norm)
}

// Update merges the patch into the addressed country. The code field is
// immutable: it is stripped from the patch before persisting.
func (uc *CountryUsecase) Update(ctx context.Context, code string, fields domain.Document) (string, error) {
	norm, err := domain.NormalizeCountryCode(code)
	if err != nil {
		return "", err
	}
	patch, err := domain.CountryPatch(fields)
	if err != nil {
		return "", err
	}
	if len(patch) == 0 {
		exists, err := uc.repo.CodeExists(ctx, norm)
		if err != nil {
			return "", err
		}
		if !exists {
			return "", domain.NotFoundError{Resource: fmt.Sprintf("country %s", norm)}
		}
		return norm, nil
	}
	matched, err := uc.repo.UpdateByCode(ctx, norm, patch)
	if err != nil {
		return "", err
	}
	if matched == 0 {
		return "", domain.NotFoundError{Resource: fmt.Sprintf("country %s", norm)}
	}
	uc.cache.Delete(ctx, docKey(domain.CountryCollection, norm), listKey(domain.CountryCollection))
	return norm, nil
}

// Delete removes the addressed country and returns the removed count
// (always 1 on success).
func (uc *CountryUsecase) Delete(ctx context.Context, code string) (int64, error) {
	norm, err := domain.NormalizeCountryCode(code)
	if err != nil {
		return 0, err
	}
	deleted, err := uc.repo.DeleteByCode(ctx, norm)
	if err != nil {
		return 0, err
	}
	if deleted < 1 {
		return 0, domain.NotFoundError{Resource: fmt.Sprintf("country %s", norm)}
	}
	uc.cache.Delete(ctx, docKey(domain.CountryCollection, norm), listKey(domain.CountryCollection))
	return deleted, nil
}

// All returns every country.
func (uc *CountryUsecase) All(ctx context.Context) ([]domain.Document, error) {
	key := listKey(domain.CountryCollection)
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

// Search returns countries matching the field filter.
func (uc *CountryUsecase) Search(ctx context.Context, filter domain.Document) ([]domain.Document, error) {
	return uc.repo.Search(ctx, filter)
}
