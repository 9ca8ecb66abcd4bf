package usecase

import (
	"context"

	"github.com/gitjits/geodata/internal/domain"
)

// CountryRepository defines persistence/lookup for countries.
type CountryRepository interface {
	Insert(ctx context.Context, doc domain.Document) error
	FindByCode(ctx context.Context, code string) (domain.Document, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	UpdateByCode(ctx context.Context, code string, patch domain.Document) (int64, error)
	DeleteByCode(ctx context.Context, code string) (int64, error)
	All(ctx context.Context) ([]domain.Document, error)
	Search(ctx context.Context, filter domain.Document) ([]domain.Document, error)
}

// StateRepository defines persistence/lookup for states, addressed by
// the composite (state_code, country_code) key.
type StateRepository interface {
	Insert(ctx context.Context, doc domain.Document) error
	FindByKey(ctx context.Context, stateCode, countryCode string) (domain.Document, error)
	KeyExists(ctx context.Context, stateCode, countryCode string) (bool, error)
	UpdateByKey(ctx context.Context, stateCode, countryCode string, patch domain.Document) (int64, error)
	DeleteByKey(ctx context.Context, stateCode, countryCode string) (int64, error)
	ByCountry(ctx context.Context, countryCode string) ([]domain.Document, error)
	All(ctx context.Context) ([]domain.Document, error)
	Search(ctx context.Context, filter domain.Document) ([]domain.Document, error)
}

// CityRepository defines persistence/lookup for cities, addressed by
// the storage surrogate id.
type CityRepository interface {
	Insert(ctx context.Context, doc domain.Document) (string, error)
	FindByID(ctx context.Context, id string) (domain.Document, error)
	UpdateByID(ctx context.Context, id string, patch domain.Document) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
	ByState(ctx context.Context, stateCode string) ([]domain.Document, error)
	ByName(ctx context.Context, name string) ([]domain.Document, error)
	All(ctx context.Context) ([]domain.Document, error)
	Search(ctx context.Context, filter domain.Document) ([]domain.Document, error)
}

// ParkRepository defines persistence/lookup for parks, addressed by
// park_code.
type ParkRepository interface {
	Insert(ctx context.Context, doc domain.Document) error
	FindByCode(ctx context.Context, code string) (domain.Document, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	UpdateByCode(ctx context.Context, code string, patch domain.Document) (int64, error)
	DeleteByCode(ctx context.Context, code string) (int64, error)
	ByState(ctx context.Context, stateCode string) ([]domain.Document, error)
	ByName(ctx context.Context, name string) ([]domain.Document, error)
	All(ctx context.Context) ([]domain.Document, error)
	Search(ctx context.Context, filter domain.Document) ([]domain.Document, error)
}
