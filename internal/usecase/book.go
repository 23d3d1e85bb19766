package usecase

import (
	"context"

	"libraryapi/internal/entity"
)

// BookRepository is the read side of the catalog.
type BookRepository interface {
	// List returns books in insertion order. An empty genre returns the
	// whole catalog; a non-empty genre is an exact, case-sensitive match.
	List(ctx context.Context, genre string) ([]entity.Book, error)
	// SuggestForUser returns books the user has not reviewed whose genre
	// matches one of the user's top-rated genres. A user with no reviews
	// gets an empty slice.
	SuggestForUser(ctx context.Context, userID string) ([]entity.Book, error)
}
