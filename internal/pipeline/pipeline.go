package pipeline

import (
	"context"
	"log"
	"os"

	"clipnotes/internal/extract"
	"clipnotes/internal/model"
	"clipnotes/internal/transcribe"

	"github.com/google/uuid"
)

// Extractor produces a trimmed audio artifact for a validated link and
// time window.
type Extractor interface {
	Extract(ctx context.Context, link string, startAt, endAt float64) (*extract.Artifact, error)
}

// Summarizer generates a summary from a transcript. Used only when the
// transcription provider returns no summary of its own.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}

// Runner drives one summarization pipeline run end to end.
type Runner interface {
	Run(ctx context.Context, in Input) (*model.Summarization, error)
}

// Orchestrator sequences Validating -> Extracting -> Transcribing ->
// Assembling. Collaborators are injected, stateless, and shared across
// concurrent runs; each run owns only its audio artifact.
type Orchestrator struct {
	extractor   Extractor
	transcriber transcribe.Client
	summarizer  Summarizer // may be nil
}

// NewOrchestrator creates a pipeline orchestrator. summarizer may be nil to
// disable the fallback.
func NewOrchestrator(extractor Extractor, transcriber transcribe.Client, summarizer Summarizer) *Orchestrator {
	return &Orchestrator{
		extractor:   extractor,
		transcriber: transcriber,
		summarizer:  summarizer,
	}
}

// Run executes one pipeline run. It returns either a complete Summarization
// or a StageError tagging the stage that failed; no stage is retried. The
// audio artifact is deleted before Run returns on every path.
func (o *Orchestrator) Run(ctx context.Context, in Input) (*model.Summarization, error) {
	req, err := Validate(in)
	if err != nil {
		return nil, &StageError{Stage: StageValidating, Err: err}
	}

	artifact, err := o.extractor.Extract(ctx, req.Link, req.StartAt, req.EndAt)
	if err != nil {
		return nil, &StageError{Stage: StageExtracting, Err: err}
	}
	// The artifact must never outlive this run, success or failure. A failed
	// delete is logged, not escalated.
	defer func() {
		if err := os.Remove(artifact.Path); err != nil && !os.IsNotExist(err) {
			log.Printf("[Pipeline] Warning: failed to remove artifact %s: %v", artifact.Path, err)
		}
	}()

	result, err := o.transcriber.Transcribe(ctx, artifact.Path)
	if err != nil {
		return nil, &StageError{Stage: StageTranscribing, Err: err}
	}

	summary := result.Summary
	if summary == "" && o.summarizer != nil {
		log.Printf("[Pipeline] Provider %s returned no summary, using fallback", result.Provider)
		summary, err = o.summarizer.Summarize(ctx, result.Transcript)
		if err != nil {
			log.Printf("[Pipeline] Warning: fallback summarization failed: %v", err)
			summary = ""
		}
	}

	rec, err := model.NewSummarization(uuid.New(), req, result.Transcript, summary)
	if err != nil {
		return nil, &StageError{Stage: StageAssembling, Err: err}
	}
	return rec, nil
}
