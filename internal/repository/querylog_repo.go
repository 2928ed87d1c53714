package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/spendlens/spendlens/internal/domain"
)

// QueryLogRepository persists answered questions for audit/debug
type QueryLogRepository struct {
	db *DB
}

// NewQueryLogRepository creates a new query log repository
func NewQueryLogRepository(db *DB) *QueryLogRepository {
	return &QueryLogRepository{db: db}
}

// Create records one answered question
func (r *QueryLogRepository) Create(entry *domain.QueryLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now()

	_, err := r.db.Exec(`
		INSERT INTO query_log (id, question, answer, had_chart, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, entry.ID, entry.Question, entry.Answer, entry.HadChart, entry.CreatedAt)

	return err
}

// Count returns the total number of logged queries
func (r *QueryLogRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM query_log`).Scan(&count)
	return count, err
}

// Recent returns the most recent entries, newest first
func (r *QueryLogRepository) Recent(limit int) ([]*domain.QueryLogEntry, error) {
	rows, err := r.db.Query(`
		SELECT id, question, answer, had_chart, created_at
		FROM query_log ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.QueryLogEntry
	for rows.Next() {
		entry := &domain.QueryLogEntry{}
		if err := rows.Scan(&entry.ID, &entry.Question, &entry.Answer, &entry.HadChart, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
