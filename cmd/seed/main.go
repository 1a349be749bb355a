package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/movie-review-api/config"
	"github.com/oksasatya/movie-review-api/pkg/helpers"
)

// Seeds a demo account with a couple of reviews for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "demoUser"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
		RETURNING id
	`, username, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s username=%s password=%s\n", id, username, password)

	reviews := []struct {
		movieID string
		rating  int
		text    string
	}{
		{"tt0111161", 5, "Still holds up after all these years."},
		{"tt0068646", 4, "A classic, though the pacing drags in the middle."},
	}
	for _, r := range reviews {
		var rid string
		if err := db.QueryRow(`
			INSERT INTO reviews (movie_id, user_id, rating, review_text)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, r.movieID, id, r.rating, r.text).Scan(&rid); err != nil {
			log.Fatalf("failed to seed review: %v", err)
		}
		fmt.Printf("seeded review: id=%s movie=%s rating=%d\n", rid, r.movieID, r.rating)
	}
}
