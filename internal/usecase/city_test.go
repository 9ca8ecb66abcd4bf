package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/gitjits/geodata/internal/domain"
	"github.com/gitjits/geodata/internal/infrastructure/cache"
)

func TestCityDuplicatesAllowed(t *testing.T) {
	uc := NewCityUsecase(newMemCityRepo(), cache.Noop{})
	ctx := context.Background()

	fields := domain.Document{"name": "Springfield", "state_code": "IL"}
	first, err := uc.Create(ctx, fields)
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := uc.Create(ctx, fields)
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if first == second {
		t.Fatalf("duplicate cities share an id: %s", first)
	}

	cities, err := uc.ByName(ctx, "Springfield")
	if err != nil {
		t.Fatalf("by name failed: %v", err)
	}
	if len(cities) != 2 {
		t.Fatalf("expected 2 cities, got %d", len(cities))
	}
}

func TestCityGetRejectsMalformedID(t *testing.T) {
	uc := NewCityUsecase(newMemCityRepo(), cache.Noop{})
	ctx := context.Background()

	for _, id := range []string{"", "nonsense", "abc123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		if _, err := uc.Get(ctx, id); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("get %q: expected invalid input, got %v", id, err)
		}
	}
}

func TestCityGetRoundTrip(t *testing.T) {
	uc := NewCityUsecase(newMemCityRepo(), cache.Noop{})
	ctx := context.Background()

	id, err := uc.Create(ctx, domain.Document{"name": "Tokyo", "state_code": "Tokyo"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !domain.ValidCityID(id) {
		t.Fatalf("create returned malformed id %q", id)
	}

	doc, err := uc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if doc["name"] != "Tokyo" {
		t.Fatalf("round-trip mismatch: %v", doc)
	}
	if doc["state_code"] != "TOKYO" {
		t.Fatalf("state code not normalized: %v", doc["state_code"])
	}
}

func TestCityUpdatePreservesID(t *testing.T) {
	repo := newMemCityRepo()
	uc := NewCityUsecase(repo, cache.Noop{})
	ctx := context.Background()

	id, err := uc.Create(ctx, domain.Document{"name": "Austin", "state_code": "TX"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := uc.Update(ctx, id, domain.Document{"_id": "aaaaaaaaaaaaaaaaaaaaaaaa", "population": 961855}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	doc, err := uc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get after update failed: %v", err)
	}
	if got, ok := doc.IntField("population"); !ok || got != 961855 {
		t.Fatalf("patch field lost: %v", doc)
	}
	if _, ok := repo.docs["aaaaaaaaaaaaaaaaaaaaaaaa"]; ok {
		t.Fatalf("update moved the document to a new id")
	}
}

func TestCityDeleteTwiceFails(t *testing.T) {
	uc := NewCityUsecase(newMemCityRepo(), cache.Noop{})
	ctx := context.Background()

	id, err := uc.Create(ctx, domain.Document{"name": "Reno", "state_code": "NV"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := uc.Delete(ctx, id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := uc.Delete(ctx, id); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestCityByStateNormalizesRegion(t *testing.T) {
	uc := NewCityUsecase(newMemCityRepo(), cache.Noop{})
	ctx := context.Background()

	for _, fields := range []domain.Document{
		{"name": "Portland", "state_code": "OR"},
		{"name": "Salem", "state_code": "or"},
		{"name": "Seattle", "state_code": "WA"},
	} {
		if _, err := uc.Create(ctx, fields); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	cities, err := uc.ByState(ctx, "or")
	if err != nil {
		t.Fatalf("by state failed: %v", err)
	}
	if len(cities) != 2 {
		t.Fatalf("expected 2 cities in OR, got %d", len(cities))
	}
}
