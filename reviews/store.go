package reviews

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// Schema is the SQL schema for the reviews database.
const Schema = `
CREATE TABLE IF NOT EXISTS reviews (
    id          TEXT PRIMARY KEY,
    subject     TEXT NOT NULL,
    rating      INTEGER NOT NULL CHECK(rating BETWEEN 1 AND 5),
    comment     TEXT DEFAULT '',
    created_at  TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_reviews_subject ON reviews(subject);
`

// Review is one submitted rating for a station, line or route.
type Review struct {
	ID        string
	Subject   string
	Rating    int
	Comment   string
	CreatedAt string
}

// Store wraps the reviews database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the reviews database and runs migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create reviews dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, fmt.Errorf("open reviews db: %w", err)
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate reviews db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

// Add stores a review and returns its generated ID. Ratings run 1 to 5.
func (s *Store) Add(subject string, rating int, comment string) (string, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", fmt.Errorf("review subject is empty")
	}
	if rating < 1 || rating > 5 {
		return "", fmt.Errorf("rating %d out of range", rating)
	}
	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO reviews (id, subject, rating, comment) VALUES (?, ?, ?, ?)`,
		id, subject, rating, comment,
	)
	if err != nil {
		return "", fmt.Errorf("insert review: %w", err)
	}
	return id, nil
}

// For lists reviews whose subject contains the given text, newest
// first.
func (s *Store) For(subject string) ([]Review, error) {
	rows, err := s.db.Query(
		`SELECT id, subject, rating, comment, created_at FROM reviews
		 WHERE subject LIKE ? ORDER BY created_at DESC`,
		"%"+strings.TrimSpace(subject)+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var out []Review
	for rows.Next() {
		var r Review
		if err := rows.Scan(&r.ID, &r.Subject, &r.Rating, &r.Comment, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// AverageRating returns the mean rating for a subject and the number of
// reviews counted.
func (s *Store) AverageRating(subject string) (float64, int, error) {
	row := s.db.QueryRow(
		`SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE subject LIKE ?`,
		"%"+strings.TrimSpace(subject)+"%",
	)
	var avg float64
	var n int
	if err := row.Scan(&avg, &n); err != nil {
		return 0, 0, fmt.Errorf("average rating: %w", err)
	}
	return avg, n, nil
}
