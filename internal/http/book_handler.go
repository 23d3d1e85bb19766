package http

import (
	"net/http"

	"libraryapi/internal/entity"
	"libraryapi/internal/httpx"
	"libraryapi/internal/usecase"
)

type BookHandler struct {
	bookRepository usecase.BookRepository
}

func NewBookHandler(repo usecase.BookRepository) *BookHandler {
	return &BookHandler{bookRepository: repo}
}

// @Summary List all books
// @Description List every book in the catalog in insertion order
// @Tags books
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /book/list [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookRepository.List(r.Context(), "")
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if books == nil {
		books = []entity.Book{}
	}
	httpx.JSONSuccess(r, w, books, nil)
}

// @Summary List books filtered by genre
// @Description List books whose genre exactly equals the query parameter; without it, lists all books
// @Tags books
// @Produce json
// @Param genre query string false "Genre to filter by (exact, case-sensitive)"
// @Success 200 {object} httpx.SuccessResponse
// @Router /book/genre [get]
func (h *BookHandler) ListByGenre(w http.ResponseWriter, r *http.Request) {
	genre := r.URL.Query().Get("genre")

	books, err := h.bookRepository.List(r.Context(), genre)
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if books == nil {
		books = []entity.Book{}
	}
	httpx.JSONSuccess(r, w, books, nil)
}
