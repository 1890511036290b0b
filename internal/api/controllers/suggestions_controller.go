package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

type SuggestionsController struct {
	suggestionService services.SuggestionServiceInterface
}

func NewSuggestionsController(suggestionService services.SuggestionServiceInterface) *SuggestionsController {
	return &SuggestionsController{
		suggestionService: suggestionService,
	}
}

func (s *SuggestionsController) ListSuggestions(c *gin.Context) {
	kind := c.Param("kind")
	if kind == "" {
		utils.RespondError(c, http.StatusBadRequest, "Suggestion kind is required")
		return
	}

	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	items, err := s.suggestionService.ListSuggestions(c.Request.Context(), kind, c.Query("category"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Suggestions fetched successfully")
}

func (s *SuggestionsController) GetSuggestionById(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Suggestion ID is required")
		return
	}

	item, err := s.suggestionService.GetSuggestionByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Suggestion fetched successfully")
}
