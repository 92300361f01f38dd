package pipeline

import "fmt"

// Stage is one step of the pipeline state machine.
type Stage string

const (
	StageValidating   Stage = "validating"
	StageExtracting   Stage = "extracting"
	StageTranscribing Stage = "transcribing"
	StageAssembling   Stage = "assembling"
)

// StageError tags a failure with the pipeline stage it occurred in. Every
// failed run surfaces exactly one StageError; callers branch on Stage or
// unwrap the typed cause with errors.As.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline failed while %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
