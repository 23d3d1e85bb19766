package store

// Repository implementation (Postgres)

import (
	"context"

	"libraryapi/internal/entity"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func (r *BookPG) List(ctx context.Context, genre string) ([]entity.Book, error) {
	const query = `
	SELECT id, title, author, genre, created_at
	FROM books
	WHERE ($1 = '' OR genre = $1)
	ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, genre)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.CreatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// SuggestForUser picks the genres of the user's top-rated books and returns
// every book in those genres the user has not reviewed yet. The MAX(rating)
// subquery is NULL for a user with no reviews, so nothing matches and the
// result is empty without a special case.
func (r *BookPG) SuggestForUser(ctx context.Context, userID string) ([]entity.Book, error) {
	const query = `
	SELECT b.id, b.title, b.author, b.genre, b.created_at
	FROM books b
	WHERE b.genre IN (
		SELECT DISTINCT bg.genre
		FROM reviews r
		JOIN books bg ON bg.id = r.book_id
		WHERE r.user_id = $1
		  AND r.rating = (SELECT MAX(rating) FROM reviews WHERE user_id = $1)
	)
	AND b.id NOT IN (
		SELECT book_id FROM reviews WHERE user_id = $1
	)
	ORDER BY b.id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.CreatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}
