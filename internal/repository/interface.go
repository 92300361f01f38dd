package repository

import (
	"context"

	"clipnotes/internal/model"

	"github.com/google/uuid"
)

// SummarizationRepository defines the interface for summarization data access
type SummarizationRepository interface {
	// Create inserts a complete summarization record
	Create(ctx context.Context, rec *model.Summarization) error

	// GetByID retrieves a summarization by ID
	GetByID(ctx context.Context, id uuid.UUID) (*model.Summarization, error)

	// List retrieves all summarizations in creation order. A non-empty search
	// filters by title substring.
	List(ctx context.Context, search string) ([]model.Summarization, error)

	// Update fully replaces the record for an existing id
	Update(ctx context.Context, id uuid.UUID, rec *model.Summarization) error

	// Delete removes the record; deleting a missing id is not an error
	Delete(ctx context.Context, id uuid.UUID) error
}
