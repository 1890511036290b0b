package suggestion_fx

import (
	"go.uber.org/fx"

	"tripforge/internal/repositories"
	"tripforge/internal/services"
)

var Module = fx.Provide(
	provideSuggestionRepo, provideSuggestionService)

func provideSuggestionRepo() repositories.SuggestionRepository {
	return repositories.NewSuggestionRepository()
}

func provideSuggestionService(suggestionRepo repositories.SuggestionRepository) services.SuggestionServiceInterface {
	return services.NewSuggestionService(suggestionRepo)
}
