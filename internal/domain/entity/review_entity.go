package entity

import "time"

// Review is a single movie review. Every review belongs to exactly one user;
// the owner reference never changes after creation.
type Review struct {
	ID         string    `json:"id"`
	MovieID    string    `json:"movieId"`
	UserID     string    `json:"userId"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"reviewText"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Author is the owning user as embedded in reads that resolve the username.
type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ReviewWithAuthor is a read-only join of a review and its owner's username.
// The author is serialized under the userId key, mirroring the shape clients
// already consume.
type ReviewWithAuthor struct {
	ID         string    `json:"id"`
	MovieID    string    `json:"movieId"`
	Author     Author    `json:"userId"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"reviewText"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
