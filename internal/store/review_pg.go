package store

import (
	"context"
	"errors"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error codes the review table can raise.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

type ReviewPG struct {
	db *pgxpool.Pool
}

func NewReviewPG(db *pgxpool.Pool) *ReviewPG {
	return &ReviewPG{db: db}
}

// Create inserts the review and lets the reviews_book_id_user_id unique
// index decide whether the user already reviewed this book. There is no
// pre-check for duplicates, so two concurrent creates for the same pair
// cannot both pass.
func (r *ReviewPG) Create(ctx context.Context, userID string, bookID int64, rating int) (entity.Review, error) {
	var exists bool
	const findBookSQL = `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`
	if err := r.db.QueryRow(ctx, findBookSQL, bookID).Scan(&exists); err != nil {
		return entity.Review{}, err
	}
	if !exists {
		return entity.Review{}, usecase.ErrNotFound
	}

	const insertSQL = `
	INSERT INTO reviews (book_id, user_id, rating)
	VALUES ($1, $2, $3)
	RETURNING id, created_at, updated_at
	`
	review := entity.Review{BookID: bookID, UserID: userID, Rating: rating}
	err := r.db.QueryRow(ctx, insertSQL, bookID, userID, rating).
		Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		return entity.Review{}, mapReviewError(err)
	}
	return review, nil
}

// UpdateRating runs the ownership check and the write in one transaction so
// a concurrent delete cannot land between them.
func (r *ReviewPG) UpdateRating(ctx context.Context, userID string, reviewID int64, rating int) (entity.Review, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Review{}, err
	}
	defer tx.Rollback(ctx)

	ownerID, err := lockReviewOwner(ctx, tx, reviewID)
	if err != nil {
		return entity.Review{}, err
	}
	if ownerID != userID {
		return entity.Review{}, usecase.ErrForbidden
	}

	const updateSQL = `
	UPDATE reviews
	SET rating = $1, updated_at = now()
	WHERE id = $2
	RETURNING id, book_id, user_id, rating, created_at, updated_at
	`
	var review entity.Review
	err = tx.QueryRow(ctx, updateSQL, rating, reviewID).
		Scan(&review.ID, &review.BookID, &review.UserID, &review.Rating, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		return entity.Review{}, mapReviewError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return entity.Review{}, err
	}
	return review, nil
}

func (r *ReviewPG) Delete(ctx context.Context, userID string, reviewID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	ownerID, err := lockReviewOwner(ctx, tx, reviewID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return usecase.ErrForbidden
	}

	if _, err := tx.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func lockReviewOwner(ctx context.Context, tx pgx.Tx, reviewID int64) (string, error) {
	const query = `SELECT user_id FROM reviews WHERE id = $1 FOR UPDATE`
	var ownerID string
	if err := tx.QueryRow(ctx, query, reviewID).Scan(&ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", usecase.ErrNotFound
		}
		return "", err
	}
	return ownerID, nil
}

// mapReviewError translates constraint violations into the usecase taxonomy.
func mapReviewError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return usecase.ErrAlreadyReviewed
	case codeForeignKeyViolation:
		return usecase.ErrNotFound
	case codeCheckViolation:
		return usecase.ErrInvalidRating
	default:
		return err
	}
}
