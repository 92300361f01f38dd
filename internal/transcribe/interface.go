package transcribe

import "context"

// Client defines the interface for transcription+summarization providers.
type Client interface {
	// Transcribe submits an audio file and waits for transcript and summary.
	Transcribe(ctx context.Context, audioPath string) (*Result, error)

	// Name returns the name of the provider (e.g., "assemblyai")
	Name() string
}
