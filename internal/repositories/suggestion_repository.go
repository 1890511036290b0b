package repositories

import (
	"context"
	"strings"

	"tripforge/internal/models/domain_models"
)

// SuggestionRepository serves the place/restaurant/hotel suggestion catalog
// backing the builder's side panels.
type SuggestionRepository interface {
	ListByKind(ctx context.Context, kind domain_models.ItemKind, category string, page, pageSize int) ([]domain_models.ScheduleItem, error)
	// GetByID returns nil when the id is unknown.
	GetByID(ctx context.Context, id string) (*domain_models.ScheduleItem, error)
}

// fixtureSuggestionRepository is backed by the embedded fixture catalog; it
// stands in for the live places/booking integration.
type fixtureSuggestionRepository struct {
	items []domain_models.ScheduleItem
}

func NewSuggestionRepository() SuggestionRepository {
	return &fixtureSuggestionRepository{items: suggestionFixtures()}
}

func (r *fixtureSuggestionRepository) ListByKind(ctx context.Context, kind domain_models.ItemKind, category string, page, pageSize int) ([]domain_models.ScheduleItem, error) {
	matched := make([]domain_models.ScheduleItem, 0, len(r.items))
	for _, item := range r.items {
		if item.Kind != kind {
			continue
		}
		if category != "" && !strings.EqualFold(item.Category, category) {
			continue
		}
		matched = append(matched, item)
	}

	start := (page - 1) * pageSize
	if start >= len(matched) {
		return []domain_models.ScheduleItem{}, nil
	}

	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], nil
}

func (r *fixtureSuggestionRepository) GetByID(ctx context.Context, id string) (*domain_models.ScheduleItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			out := item
			return &out, nil
		}
	}
	return nil, nil
}
