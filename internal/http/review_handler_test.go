package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"libraryapi/internal/entity"
	"libraryapi/internal/testutil"
	"libraryapi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	createFn func(ctx context.Context, userID string, bookID int64, rating int) (entity.Review, error)
	updateFn func(ctx context.Context, userID string, reviewID int64, rating int) (entity.Review, error)
	deleteFn func(ctx context.Context, userID string, reviewID int64) error
}

func (f *fakeReviewRepo) Create(ctx context.Context, userID string, bookID int64, rating int) (entity.Review, error) {
	return f.createFn(ctx, userID, bookID, rating)
}

func (f *fakeReviewRepo) UpdateRating(ctx context.Context, userID string, reviewID int64, rating int) (entity.Review, error) {
	return f.updateFn(ctx, userID, reviewID, rating)
}

func (f *fakeReviewRepo) Delete(ctx context.Context, userID string, reviewID int64) error {
	return f.deleteFn(ctx, userID, reviewID)
}

func TestReviewHandler_Add(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		authenticated  bool
		repo           *fakeReviewRepo
		expectedStatus int
	}{
		{
			name:          "success",
			body:          map[string]int64{"book": 1, "rating": 5},
			authenticated: true,
			repo: &fakeReviewRepo{
				createFn: func(ctx context.Context, userID string, bookID int64, rating int) (entity.Review, error) {
					assert.Equal(t, testutil.TestUser.ID, userID)
					assert.Equal(t, int64(1), bookID)
					assert.Equal(t, 5, rating)
					return entity.Review{ID: 10, BookID: bookID, UserID: userID, Rating: rating}, nil
				},
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unauthorized without user",
			body:           map[string]int64{"book": 1, "rating": 5},
			authenticated:  false,
			repo:           &fakeReviewRepo{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "rating below range",
			body:           map[string]int64{"book": 1, "rating": 0},
			authenticated:  true,
			repo:           &fakeReviewRepo{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rating above range",
			body:           map[string]int64{"book": 1, "rating": 6},
			authenticated:  true,
			repo:           &fakeReviewRepo{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing book id",
			body:           map[string]int64{"rating": 3},
			authenticated:  true,
			repo:           &fakeReviewRepo{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           "not json at all",
			authenticated:  true,
			repo:           &fakeReviewRepo{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:          "book not found",
			body:          map[string]int64{"book": 999, "rating": 4},
			authenticated: true,
			repo: &fakeReviewRepo{
				createFn: func(ctx context.Context, userID string, bookID int64, rating int) (entity.Review, error) {
					return entity.Review{}, usecase.ErrNotFound
				},
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:          "duplicate review",
			body:          map[string]int64{"book": 1, "rating": 3},
			authenticated: true,
			repo: &fakeReviewRepo{
				createFn: func(ctx context.Context, userID string, bookID int64, rating int) (entity.Review, error) {
					return entity.Review{}, usecase.ErrAlreadyReviewed
				},
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewReviewHandler(tt.repo)

			r := testutil.NewRequest(http.MethodPost, "/review/add", tt.body)
			if tt.authenticated {
				r = testutil.AsUser(r, testutil.TestUser.ID)
			}
			w := httptest.NewRecorder()

			handler.Add(w, r)

			resp := testutil.RecordHTTPResponse(w)
			assert.Equal(t, tt.expectedStatus, resp.Code)
		})
	}
}

func TestReviewHandler_Add_DuplicateMessage(t *testing.T) {
	repo := &fakeReviewRepo{
		createFn: func(ctx context.Context, userID string, bookID int64, rating int) (entity.Review, error) {
			return entity.Review{}, usecase.ErrAlreadyReviewed
		},
	}
	handler := NewReviewHandler(repo)

	r := testutil.AsUser(testutil.NewRequest(http.MethodPost, "/review/add", map[string]int64{"book": 1, "rating": 3}), testutil.TestUser.ID)
	w := httptest.NewRecorder()
	handler.Add(w, r)

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	errBody, ok := resp.Body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", errBody["code"])
	assert.Contains(t, errBody["message"], "already reviewed")
}

func TestReviewHandler_Add_ResponseShape(t *testing.T) {
	repo := &fakeReviewRepo{
		createFn: func(ctx context.Context, userID string, bookID int64, rating int) (entity.Review, error) {
			return entity.Review{ID: 10, BookID: bookID, UserID: userID, Rating: rating}, nil
		},
	}
	handler := NewReviewHandler(repo)

	r := testutil.AsUser(testutil.NewRequest(http.MethodPost, "/review/add", map[string]int64{"book": 1, "rating": 4}), testutil.TestUser.ID)
	w := httptest.NewRecorder()
	handler.Add(w, r)

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusCreated, resp.Code)
	data, ok := resp.Body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(10), data["id"])
	assert.Equal(t, float64(1), data["book"])
	assert.Equal(t, float64(4), data["rating"])
	// The owner's id is implicit and never serialized.
	assert.NotContains(t, data, "user")
	assert.NotContains(t, data, "user_id")
}

func TestReviewHandler_Update(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           interface{}
		repo           *fakeReviewRepo
		expectedStatus int
	}{
		{
			name: "success",
			path: "/review/update/10",
			body: map[string]int{"rating": 2},
			repo: &fakeReviewRepo{
				updateFn: func(ctx context.Context, userID string, reviewID int64, rating int) (entity.Review, error) {
					assert.Equal(t, int64(10), reviewID)
					assert.Equal(t, 2, rating)
					return entity.Review{ID: reviewID, BookID: 1, UserID: userID, Rating: rating}, nil
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non-numeric id",
			path:           "/review/update/abc",
			body:           map[string]int{"rating": 2},
			repo:           &fakeReviewRepo{},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "rating out of range",
			path:           "/review/update/10",
			body:           map[string]int{"rating": 6},
			repo:           &fakeReviewRepo{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "not found",
			path: "/review/update/999",
			body: map[string]int{"rating": 2},
			repo: &fakeReviewRepo{
				updateFn: func(ctx context.Context, userID string, reviewID int64, rating int) (entity.Review, error) {
					return entity.Review{}, usecase.ErrNotFound
				},
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "forbidden for non-owner",
			path: "/review/update/10",
			body: map[string]int{"rating": 2},
			repo: &fakeReviewRepo{
				updateFn: func(ctx context.Context, userID string, reviewID int64, rating int) (entity.Review, error) {
					return entity.Review{}, usecase.ErrForbidden
				},
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewReviewHandler(tt.repo)

			r := testutil.AsUser(testutil.NewRequest(http.MethodPut, tt.path, tt.body), testutil.TestUser.ID)
			w := httptest.NewRecorder()

			handler.Update(w, r)

			resp := testutil.RecordHTTPResponse(w)
			assert.Equal(t, tt.expectedStatus, resp.Code)
		})
	}
}

func TestReviewHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		repo           *fakeReviewRepo
		expectedStatus int
	}{
		{
			name: "success",
			path: "/review/delete/10",
			repo: &fakeReviewRepo{
				deleteFn: func(ctx context.Context, userID string, reviewID int64) error {
					assert.Equal(t, int64(10), reviewID)
					return nil
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/review/delete/999",
			repo: &fakeReviewRepo{
				deleteFn: func(ctx context.Context, userID string, reviewID int64) error {
					return usecase.ErrNotFound
				},
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "forbidden for non-owner",
			path: "/review/delete/10",
			repo: &fakeReviewRepo{
				deleteFn: func(ctx context.Context, userID string, reviewID int64) error {
					return usecase.ErrForbidden
				},
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "bad path",
			path:           "/review/delete/",
			repo:           &fakeReviewRepo{},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewReviewHandler(tt.repo)

			r := testutil.AsUser(testutil.NewRequest(http.MethodDelete, tt.path, nil), testutil.TestUser.ID)
			w := httptest.NewRecorder()

			handler.Delete(w, r)

			resp := testutil.RecordHTTPResponse(w)
			assert.Equal(t, tt.expectedStatus, resp.Code)
		})
	}
}

func TestParseReviewID(t *testing.T) {
	tests := []struct {
		path   string
		action string
		wantID int64
		wantOK bool
	}{
		{"/review/update/10", "update", 10, true},
		{"/review/delete/3", "delete", 3, true},
		{"/review/update/abc", "update", 0, false},
		{"/review/update/-1", "update", 0, false},
		{"/review/update/0", "update", 0, false},
		{"/review/update/", "update", 0, false},
		{"/review/delete/10", "update", 0, false},
		{"/other/update/10", "update", 0, false},
	}

	for _, tt := range tests {
		id, ok := parseReviewID(tt.path, tt.action)
		assert.Equal(t, tt.wantOK, ok, tt.path)
		assert.Equal(t, tt.wantID, id, tt.path)
	}
}
