package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"clipnotes/internal/db"
	"clipnotes/internal/model"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no record exists for the given id.
var ErrNotFound = errors.New("summarization not found")

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository() SummarizationRepository {
	return &postgresRepository{
		db: db.DB,
	}
}

// Create inserts a complete summarization record
func (r *postgresRepository) Create(ctx context.Context, rec *model.Summarization) error {
	query := `
		INSERT INTO summarizations (id, title, link, startat, endat, transcript, summary)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Title,
		rec.Link,
		rec.StartAt,
		rec.EndAt,
		rec.Transcript,
		rec.Summary,
	)
	if err != nil {
		return fmt.Errorf("failed to create summarization: %w", err)
	}

	return nil
}

// GetByID retrieves a summarization by ID
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Summarization, error) {
	query := `
		SELECT id, title, link, startat, endat, transcript, summary
		FROM summarizations
		WHERE id = $1
	`

	var rec model.Summarization
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&rec.Title,
		&rec.Link,
		&rec.StartAt,
		&rec.EndAt,
		&rec.Transcript,
		&rec.Summary,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get summarization: %w", err)
	}

	return &rec, nil
}

// List retrieves summarizations in creation order, optionally filtered by a
// title substring.
func (r *postgresRepository) List(ctx context.Context, search string) ([]model.Summarization, error) {
	query := `
		SELECT id, title, link, startat, endat, transcript, summary
		FROM summarizations
		WHERE $1 = '' OR title ILIKE '%' || $1 || '%'
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("failed to query summarizations: %w", err)
	}
	defer rows.Close()

	var records []model.Summarization
	for rows.Next() {
		var rec model.Summarization
		if err := rows.Scan(
			&rec.ID,
			&rec.Title,
			&rec.Link,
			&rec.StartAt,
			&rec.EndAt,
			&rec.Transcript,
			&rec.Summary,
		); err != nil {
			return nil, fmt.Errorf("failed to scan summarization: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}

// Update fully replaces all fields of the record with the given id. Updating
// a missing id affects zero rows and is not reported as an error.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, rec *model.Summarization) error {
	query := `
		UPDATE summarizations SET
			title = $1,
			link = $2,
			startat = $3,
			endat = $4,
			transcript = $5,
			summary = $6
		WHERE id = $7
	`

	_, err := r.db.ExecContext(ctx, query,
		rec.Title,
		rec.Link,
		rec.StartAt,
		rec.EndAt,
		rec.Transcript,
		rec.Summary,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update summarization: %w", err)
	}

	return nil
}

// Delete removes the record; deleting a missing id is a no-op.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM summarizations WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete summarization: %w", err)
	}

	return nil
}
