package http

import (
	"net/http"

	"libraryapi/internal/entity"
	"libraryapi/internal/httpx"
	"libraryapi/internal/usecase"
)

type SuggestHandler struct {
	bookRepository usecase.BookRepository
}

func NewSuggestHandler(repo usecase.BookRepository) *SuggestHandler {
	return &SuggestHandler{bookRepository: repo}
}

// @Summary Suggest books based on the caller's review history
// @Description Unreviewed books sharing a genre with the caller's highest-rated books; empty for users with no reviews
// @Tags suggestions
// @Produce json
// @Security Bearer
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /suggest/api [get]
func (h *SuggestHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	books, err := h.bookRepository.SuggestForUser(r.Context(), userID)
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if books == nil {
		books = []entity.Book{}
	}
	httpx.JSONSuccess(r, w, books, nil)
}
