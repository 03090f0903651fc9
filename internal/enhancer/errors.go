package enhancer

import "fmt"

// RefinementError reports a failed transcript-cleanup call. Fatal to the run.
type RefinementError struct {
	Err error
}

func (e *RefinementError) Error() string {
	return fmt.Sprintf("refinement: %v", e.Err)
}

func (e *RefinementError) Unwrap() error {
	return e.Err
}

// TranslationError reports a failed translation call. Fatal to the run; there
// is no fallback to untranslated output.
type TranslationError struct {
	TargetLang string
	Err        error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation to %s: %v", e.TargetLang, e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}

// SummarizationError reports a failed summary call. The pipeline logs and
// swallows it; a run completes without a summary.
type SummarizationError struct {
	Err error
}

func (e *SummarizationError) Error() string {
	return fmt.Sprintf("summarization: %v", e.Err)
}

func (e *SummarizationError) Unwrap() error {
	return e.Err
}
