package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBookPG_List(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	a := seedBook(t, db, "A", "X", "Sci-Fi")
	b := seedBook(t, db, "B", "Y", "Sci-Fi")
	c := seedBook(t, db, "C", "Z", "Drama")

	repo := NewBookPG(db)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []int64{a, b, c}, bookIDs(all))

	sciFi, err := repo.List(ctx, "Sci-Fi")
	require.NoError(t, err)
	require.Equal(t, []int64{a, b}, bookIDs(sciFi))

	// Genre matching is exact, not case-insensitive.
	lower, err := repo.List(ctx, "sci-fi")
	require.NoError(t, err)
	require.Empty(t, lower)

	none, err := repo.List(ctx, "Horror")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestBookPG_SuggestForUser_TopGenreMinusReviewed(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	a := seedBook(t, db, "A", "X", "Sci-Fi")
	b := seedBook(t, db, "B", "Y", "Sci-Fi")
	c := seedBook(t, db, "C", "Z", "Drama")
	userID := seedUser(t, db, "reader")

	reviews := NewReviewPG(db)
	_, err := reviews.Create(ctx, userID, a, 5)
	require.NoError(t, err)
	_, err = reviews.Create(ctx, userID, c, 3)
	require.NoError(t, err)

	// Top rating is 5 on a Sci-Fi book, so the only suggestion is the
	// unreviewed Sci-Fi title. The reviewed Drama book must not drag its
	// genre in.
	got, err := NewBookPG(db).SuggestForUser(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, []int64{b}, bookIDs(got))
}

func TestBookPG_SuggestForUser_TiedTopRatings(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	a := seedBook(t, db, "A", "X", "Sci-Fi")
	b := seedBook(t, db, "B", "Y", "Drama")
	c := seedBook(t, db, "C", "Z", "Sci-Fi")
	d := seedBook(t, db, "D", "W", "Drama")
	seedBook(t, db, "E", "V", "Mystery")
	userID := seedUser(t, db, "reader")

	reviews := NewReviewPG(db)
	_, err := reviews.Create(ctx, userID, a, 4)
	require.NoError(t, err)
	_, err = reviews.Create(ctx, userID, b, 4)
	require.NoError(t, err)

	// Two reviews tie for the top rating, so both of their genres count and
	// the Mystery book stays out.
	got, err := NewBookPG(db).SuggestForUser(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, []int64{c, d}, bookIDs(got))
}

func TestBookPG_SuggestForUser_NoReviews(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	seedBook(t, db, "A", "X", "Sci-Fi")
	userID := seedUser(t, db, "reader")

	got, err := NewBookPG(db).SuggestForUser(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestBookPG_SuggestForUser_EveryTopGenreBookReviewed(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	a := seedBook(t, db, "A", "X", "Sci-Fi")
	seedBook(t, db, "B", "Y", "Drama")
	userID := seedUser(t, db, "reader")

	_, err := NewReviewPG(db).Create(ctx, userID, a, 5)
	require.NoError(t, err)

	// The only Sci-Fi book is already reviewed, so there is nothing left to
	// suggest even though the genre itself qualifies.
	got, err := NewBookPG(db).SuggestForUser(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, got)
}
