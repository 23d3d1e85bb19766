package entity

import "time"

// Review is a user's 1-5 rating of a book. The owner is implicit on the
// wire: clients never see or set user_id, it comes from the access token.
type Review struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"book"`
	UserID    string    `json:"-"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
