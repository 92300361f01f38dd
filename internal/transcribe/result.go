package transcribe

// Result represents the outcome of a transcription job. Immutable once
// produced; exactly one Result exists per audio artifact.
type Result struct {
	Transcript    string  // the transcribed text
	Summary       string  // informative bullet summary, may be empty if the provider produced none
	Provider      string  // the provider used (e.g., "assemblyai")
	JobID         string  // provider-side job identifier, for debugging
	AudioDuration float64 // seconds, as reported by the provider (0 if not provided)
}
