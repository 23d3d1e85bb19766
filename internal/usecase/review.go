package usecase

import (
	"context"

	"libraryapi/internal/entity"
)

// ReviewRepository owns the review lifecycle. All three mutations take the
// caller's user id explicitly; ownership is never ambient state.
type ReviewRepository interface {
	// Create inserts a new review. Returns ErrNotFound when the book does
	// not exist and ErrAlreadyReviewed when the (book, user) pair already
	// has one. The uniqueness check rides on the storage constraint, so
	// concurrent creates cannot both succeed.
	Create(ctx context.Context, userID string, bookID int64, rating int) (entity.Review, error)
	// UpdateRating replaces the rating in place. Returns ErrNotFound for a
	// missing review and ErrForbidden when the caller is not the owner.
	UpdateRating(ctx context.Context, userID string, reviewID int64, rating int) (entity.Review, error)
	// Delete removes the review permanently. Same error taxonomy as
	// UpdateRating.
	Delete(ctx context.Context, userID string, reviewID int64) error
}
