package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"clipnotes/internal/model"
)

// Input is a raw create/update request before validation.
type Input struct {
	Title   string
	Link    string
	StartAt float64
	EndAt   float64
}

// ValidationError reports a malformed request field. It is a client error,
// not a pipeline bug.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// linkPattern accepts watch URLs with an 11-character video id, optionally
// followed by extra query parameters.
var linkPattern = regexp.MustCompile(`^https://www\.youtube\.com/watch\?v=[A-Za-z0-9_-]{11}([&#].*)?$`)

// Validate checks a raw request and returns a typed SummarizationRequest.
// It has no side effects.
func Validate(in Input) (model.SummarizationRequest, error) {
	if strings.TrimSpace(in.Title) == "" {
		return model.SummarizationRequest{}, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if !linkPattern.MatchString(in.Link) {
		return model.SummarizationRequest{}, &ValidationError{
			Field:  "link",
			Reason: "must be a YouTube watch URL with an 11-character video id",
		}
	}
	if in.StartAt < 0 {
		return model.SummarizationRequest{}, &ValidationError{Field: "startAt", Reason: "must not be negative"}
	}
	if in.EndAt <= in.StartAt {
		return model.SummarizationRequest{}, &ValidationError{Field: "endAt", Reason: "must be greater than startAt"}
	}

	return model.SummarizationRequest{
		Title:   in.Title,
		Link:    in.Link,
		StartAt: in.StartAt,
		EndAt:   in.EndAt,
	}, nil
}
