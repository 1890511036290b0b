package services

import (
	"context"
	"log"

	"tripforge/internal/models/domain_models"
	"tripforge/internal/repositories"
	"tripforge/pkg/utils"
)

type SuggestionServiceInterface interface {
	ListSuggestions(ctx context.Context, kind, category string, page, pageSize int) ([]domain_models.ScheduleItem, error)
	GetSuggestionByID(ctx context.Context, id string) (*domain_models.ScheduleItem, error)
}

type SuggestionService struct {
	suggestionRepo repositories.SuggestionRepository
}

func NewSuggestionService(suggestionRepo repositories.SuggestionRepository) SuggestionServiceInterface {
	return &SuggestionService{
		suggestionRepo: suggestionRepo,
	}
}

func (s *SuggestionService) ListSuggestions(ctx context.Context, kind, category string, page, pageSize int) ([]domain_models.ScheduleItem, error) {
	itemKind := domain_models.ItemKind(kind)
	if !itemKind.IsValid() {
		return nil, utils.ErrInvalidInput
	}
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	items, err := s.suggestionRepo.ListByKind(ctx, itemKind, category, page, pageSize)
	if err != nil {
		log.Printf("Error listing suggestions: %v", err)
		return nil, err
	}

	return items, nil
}

func (s *SuggestionService) GetSuggestionByID(ctx context.Context, id string) (*domain_models.ScheduleItem, error) {
	item, err := s.suggestionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, utils.ErrSuggestionNotFound
	}

	return item, nil
}
