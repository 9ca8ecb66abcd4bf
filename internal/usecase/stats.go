package usecase

import (
	"context"
	"log/slog"

	"github.com/gitjits/geodata/internal/domain"
)

// Statistics summarizes the datastore contents.
type Statistics struct {
	TotalCountries  int            `json:"total_countries"`
	TotalStates     int            `json:"total_states"`
	TotalCities     int            `json:"total_cities"`
	TotalParks      int            `json:"total_parks"`
	StatesByCountry map[string]int `json:"states_by_country"`
	Database        string         `json:"database"`
	Collections     []string       `json:"collections"`
}

// PurgeResult reports how many records a purge removed per entity.
type PurgeResult struct {
	Cities    int `json:"cities"`
	States    int `json:"states"`
	Countries int `json:"countries"`
}

func (p PurgeResult) Total() int {
	return p.Cities + p.States + p.Countries
}

// StatsUsecase aggregates across all four entities for the utility
// endpoints.
type StatsUsecase struct {
	countries *CountryUsecase
	states    *StateUsecase
	cities    *CityUsecase
	parks     *ParkUsecase
	database  string
}

func NewStatsUsecase(countries *CountryUsecase, states *StateUsecase, cities *CityUsecase, parks *ParkUsecase, database string) *StatsUsecase {
	return &StatsUsecase{countries: countries, states: states, cities: cities, parks: parks, database: database}
}

// Collect gathers entity counts and a per-country state breakdown.
func (uc *StatsUsecase) Collect(ctx context.Context) (Statistics, error) {
	countries, err := uc.countries.All(ctx)
	if err != nil {
		return Statistics{}, err
	}
	states, err := uc.states.All(ctx)
	if err != nil {
		return Statistics{}, err
	}
	cities, err := uc.cities.All(ctx)
	if err != nil {
		return Statistics{}, err
	}
	parks, err := uc.parks.All(ctx)
	if err != nil {
		return Statistics{}, err
	}

	byCountry := map[string]int{}
	for _, st := range states {
		code, ok := st.StringField(domain.FieldCountryCode)
		if !ok || code == "" {
			code = "Unknown"
		}
		byCountry[code]++
	}

	return Statistics{
		TotalCountries:  len(countries),
		TotalStates:     len(states),
		TotalCities:     len(cities),
		TotalParks:      len(parks),
		StatesByCountry: byCountry,
		Database:        uc.database,
		Collections: []string{
			domain.CountryCollection,
			domain.StateCollection,
			domain.CityCollection,
			domain.ParkCollection,
		},
	}, nil
}

// PurgeAll removes every city, state and country, best effort: records
// that fail to delete are skipped and counted out. Parks are left
// untouched, matching the administrative scope of the purge endpoint.
func (uc *StatsUsecase) PurgeAll(ctx context.Context) (PurgeResult, error) {
	var result PurgeResult

	cities, err := uc.cities.All(ctx)
	if err != nil {
		return result, err
	}
	for _, city := range cities {
		id, ok := city.StringField("_id")
		if !ok {
			continue
		}
		if _, err := uc.cities.Delete(ctx, id); err != nil {
			slog.WarnContext(ctx, "purge skipped city",
				slog.String("id", id),
				slog.String("error", err.Error()),
				slog.String("module", "stats"),
			)
			continue
		}
		result.Cities++
	}

	states, err := uc.states.All(ctx)
	if err != nil {
		return result, err
	}
	for _, st := range states {
		sc, _ := st.StringField(domain.FieldStateCode)
		cc, _ := st.StringField(domain.FieldCountryCode)
		if _, err := uc.states.Delete(ctx, sc, cc); err != nil {
			slog.WarnContext(ctx, "purge skipped state",
				slog.String("state_code", sc),
				slog.String("country_code", cc),
				slog.String("error", err.Error()),
				slog.String("module", "stats"),
			)
			continue
		}
		result.States++
	}

	countries, err := uc.countries.All(ctx)
	if err != nil {
		return result, err
	}
	for _, country := range countries {
		code, _ := country.StringField(domain.FieldCode)
		if _, err := uc.countries.Delete(ctx, code); err != nil {
			slog.WarnContext(ctx, "purge skipped country",
				slog.String("code", code),
				slog.String("error", err.Error()),
				slog.String("module", "stats"),
			)
			continue
		}
		result.Countries++
	}

	return result, nil
}
