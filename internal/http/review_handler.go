package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"libraryapi/internal/httpx"
	"libraryapi/internal/usecase"
)

type ReviewHandler struct {
	reviewRepository usecase.ReviewRepository
}

func NewReviewHandler(repo usecase.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{reviewRepository: repo}
}

// parseReviewID extracts the numeric id from /review/{action}/{id}.
func parseReviewID(path, action string) (int64, bool) {
	trimmed := strings.Trim(path, "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) != 3 || parts[0] != "review" || parts[1] != action {
		return 0, false
	}
	id, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type addReviewRequest struct {
	BookID int64 `json:"book" validate:"required"`
	Rating int   `json:"rating" validate:"required,gte=1,lte=5"`
}

type updateReviewRequest struct {
	Rating int `json:"rating" validate:"required,gte=1,lte=5"`
}

// @Summary Add a review for a book
// @Description Create the caller's review of a book; one review per user per book
// @Tags reviews
// @Accept json
// @Produce json
// @Security Bearer
// @Param review body addReviewRequest true "Book id and rating"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /review/add [post]
func (h *ReviewHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var input addReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(input); len(validationErrors) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	review, err := h.reviewRepository.Create(r.Context(), userID, input.BookID, input.Rating)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, usecase.ErrAlreadyReviewed):
			httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "You have already reviewed this book", nil)
		case errors.Is(err, usecase.ErrInvalidRating):
			httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5", nil)
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccessCreated(r, w, review)
}

// @Summary Update a review for a book
// @Description Replace the rating of the caller's own review
// @Tags reviews
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Review ID"
// @Param review body updateReviewRequest true "New rating"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /review/update/{id} [put]
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := parseReviewID(r.URL.Path, "update")
	if !ok {
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Review not found", nil)
		return
	}

	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var input updateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if validationErrors := ValidateStruct(input); len(validationErrors) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	review, err := h.reviewRepository.UpdateRating(r.Context(), userID, reviewID, input.Rating)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Review not found", nil)
		case errors.Is(err, usecase.ErrForbidden):
			httpx.JSONError(r, w, http.StatusForbidden, "FORBIDDEN", "Not permitted", nil)
		case errors.Is(err, usecase.ErrInvalidRating):
			httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5", nil)
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccess(r, w, review, nil)
}

// @Summary Delete a review for a book
// @Description Remove the caller's own review permanently
// @Tags reviews
// @Produce json
// @Security Bearer
// @Param id path int true "Review ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /review/delete/{id} [delete]
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := parseReviewID(r.URL.Path, "delete")
	if !ok {
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Review not found", nil)
		return
	}

	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	err := h.reviewRepository.Delete(r.Context(), userID, reviewID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Review not found", nil)
		case errors.Is(err, usecase.ErrForbidden):
			httpx.JSONError(r, w, http.StatusForbidden, "FORBIDDEN", "Not permitted", nil)
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccess(r, w, nil, map[string]interface{}{"message": "Review deleted"})
}
