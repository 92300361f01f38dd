package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// SummarizationRequest is a validated create/update request. It only exists
// during request handling and is never persisted.
type SummarizationRequest struct {
	Title   string
	Link    string
	StartAt float64 // seconds into the source video
	EndAt   float64 // exclusive end, seconds
}

// Duration returns the requested window length in seconds.
func (r SummarizationRequest) Duration() float64 {
	return r.EndAt - r.StartAt
}

// Summarization is the persisted record combining video metadata with its
// transcript and summary.
type Summarization struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Link       string    `json:"link"`
	StartAt    float64   `json:"startAt"`
	EndAt      float64   `json:"endAt"`
	Transcript string    `json:"transcript"`
	Summary    string    `json:"summary"`
}

// IncompleteDataError reports which fields were missing when assembling a
// Summarization. It indicates a pipeline bug, not bad user input.
type IncompleteDataError struct {
	Missing []string
}

func (e *IncompleteDataError) Error() string {
	return fmt.Sprintf("summarization is incomplete, missing: %s", strings.Join(e.Missing, ", "))
}

// NewSummarization assembles a complete record from a validated request and
// the transcription output. It returns IncompleteDataError if any field is
// absent, so a partially-filled record can never be constructed.
func NewSummarization(id uuid.UUID, req SummarizationRequest, transcript, summary string) (*Summarization, error) {
	var missing []string
	if id == uuid.Nil {
		missing = append(missing, "id")
	}
	if strings.TrimSpace(req.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(req.Link) == "" {
		missing = append(missing, "link")
	}
	if req.EndAt <= req.StartAt {
		missing = append(missing, "time window")
	}
	if strings.TrimSpace(transcript) == "" {
		missing = append(missing, "transcript")
	}
	if strings.TrimSpace(summary) == "" {
		missing = append(missing, "summary")
	}
	if len(missing) > 0 {
		return nil, &IncompleteDataError{Missing: missing}
	}

	return &Summarization{
		ID:         id,
		Title:      req.Title,
		Link:       req.Link,
		StartAt:    req.StartAt,
		EndAt:      req.EndAt,
		Transcript: transcript,
		Summary:    summary,
	}, nil
}
