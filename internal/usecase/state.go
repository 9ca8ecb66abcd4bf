package usecase

import (
	"context"
	"fmt"

	"github.com/gitjits/geodata/internal/domain"
	"github.com/gitjits/geodata/internal/infrastructure/cache"
)

// StateKey is the composite natural key of a state.
type StateKey struct {
	StateCode   string `json:"state_code"`
	CountryCode string `json:"country_code"`
}

func (k StateKey) String() string {
	return k.StateCode + "," + k.CountryCode
}

// StateUsecase owns the state business rules. It carries the only
// cross-entity dependency: creating a state first checks that the
// referenced country exists. The check-then-insert sequence is not
// atomic; the compound unique index is the real guarantee.
type StateUsecase struct {
	repo      StateRepository
	countries CountryRepository
	cache     cache.Cache
}

func NewStateUsecase(repo StateRepository, countries CountryRepository, c cache.Cache) *StateUsecase {
	return &StateUsecase{repo: repo, countries: countries, cache: c}
}

func (uc *StateUsecase) normalizeKey(stateCode, countryCode string) (StateKey, error) {
	sc, err := domain.NormalizeStateCode(stateCode)
	if err != nil {
		return StateKey{}, err
	}
	cc, err := domain.NormalizeCountryCode(countryCode)
	if err != nil {
		return StateKey{}, err
	}
	return StateKey{StateCode: sc, CountryCode: cc}, nil
}

// Create validates and persists a new state, returning its normalized
// composite key. The referenced country must exist; then the composite
// key must be free.
func (uc *StateUsecase) Create(ctx context.Context, fields domain.Document) (StateKey, error) {
	doc, err := domain.NewState(fields)
	if err != nil {
		return StateKey{}, err
	}
	stateCode, _ := doc.StringField(domain.FieldStateCode)
	countryCode, _ := doc.StringField(domain.FieldCountryCode)
	key := StateKey{StateCode: stateCode, CountryCode: countryCode}

	countryExists, err := uc.countries.CodeExists(ctx, countryCode)
	if err != nil {
		return StateKey{}, err
	}
	if !countryExists {
		return StateKey{}, domain.ReferenceNotFoundError{Resource: fmt.Sprintf("country %s", countryCode)}
	}

	exists, err := uc.repo.KeyExists(ctx, stateCode, countryCode)
	if err != nil {
		return StateKey{}, err
	}
	if exists {
		return StateKey{}, domain.AlreadyExistsError{Resource: fmt.Sprintf("state %s", key)}
	}
	if err := uc.repo.Insert(ctx, doc); err != nil {
		return StateKey{}, err
	}
	uc.invalidate(ctx, key)
	return key, nil
}

// Get returns a state by its composite key, case-insensitively.
func (uc *StateUsecase) Get(ctx context.Context, stateCode, countryCode string) (domain.Document, error) {
	key, err := uc.normalizeKey(stateCode, countryCode)
	if err != nil {
		return nil, err
	}
	ck := docKey(domain.StateCollection, key.String())
	if doc, ok := cachedDoc(ctx, uc.cache, ck); ok {
		return doc, nil
	}
	doc, err := uc.repo.FindByKey(ctx, key.StateCode, key.CountryCode)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.NotFoundError{Resource: fmt.Sprintf("state %s", key)}
	}
	storeDoc(ctx, uc.cache, ck, doc)
	return doc, nil
}

// Exists reports whether a state with the given composite key exists.
func (uc *StateUsecase) Exists(ctx context.Context, stateCode, countryCode string) (bool, error) {
	key, err := uc.normalizeKey(stateCode, countryCode)
	if err != nil {
		return false, err
	}
	return uc.repo.KeyExists(ctx, key.StateCode, key.CountryCode)
}

// Update merges the patch into the addressed state. Both key fields are
// immutable: they are stripped from the patch before persisting.
func (uc *StateUsecase) Update(ctx context.Context, stateCode, countryCode string, fields domain.Document) (StateKey, error) {
	key, err := uc.normalizeKey(stateCode, countryCode)
	if err != nil {
		return StateKey{}, err
	}
	patch, err := domain.StatePatch(fields)
	if err != nil {
		return StateKey{}, err
	}
	if len(patch) == 0 {
		exists, err := uc.repo.KeyExists(ctx, key.StateCode, key.CountryCode)
		if err != nil {
			return StateKey{}, err
		}
		if !exists {
			return StateKey{}, domain.NotFoundError{Resource: fmt.Sprintf("state %s", key)}
		}
		return key, nil
	}
	matched, err := uc.repo.UpdateByKey(ctx, key.StateCode, key.CountryCode, patch)
	if err != nil {
		return StateKey{}, err
	}
	if matched == 0 {
		return StateKey{}, domain.NotFoundError{Resource: fmt.Sprintf("state %s", key)}
	}
	uc.invalidate(ctx, key)
	return key, nil
}

// Delete removes the addressed state and returns the removed count.
// There is no reverse check: deleting a country neither cascades to nor
// blocks on its states.
func (uc *StateUsecase) Delete(ctx context.Context, stateCode, countryCode string) (int64, error) {
	key, err := uc.normalizeKey(stateCode, countryCode)
	if err != nil {
		return 0, err
	}
	deleted, err := uc.repo.DeleteByKey(ctx, key.StateCode, key.CountryCode)
	if err != nil {
		return 0, err
	}
	if deleted < 1 {
		return 0, domain.NotFoundError{Resource: fmt.Sprintf("state %s", key)}
	}
	uc.invalidate(ctx, key)
	return deleted, nil
}

// ByCountry returns all states of a country, case-insensitively.
func (uc *StateUsecase) ByCountry(ctx context.Context, countryCode string) ([]domain.Document, error) {
	cc, err := domain.NormalizeCountryCode(countryCode)
	if err != nil {
		return nil, err
	}
	return uc.repo.ByCountry(ctx, cc)
}

// All returns every state.
func (uc *StateUsecase) All(ctx context.Context) ([]domain.Document, error) {
	key := listKey(domain.StateCollection)
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

// Search returns states matching the field filter.
func (uc *StateUsecase) Search(ctx context.Context, filter domain.Document) ([]domain.Document, error) {
	return uc.repo.Search(ctx, filter)
}

func (uc *StateUsecase) invalidate(ctx context.Context, key StateKey) {
	uc.cache.Delete(ctx,
		docKey(domain.StateCollection, key.String()),
		listKey(domain.StateCollection),
	)
}
