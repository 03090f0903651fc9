package transcriber

import "fmt"

// TranscriptionError reports a model load or inference failure. Fatal to the
// run; no partial transcript survives it.
type TranscriptionError struct {
	AudioPath string
	Err       error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription: %s: %v", e.AudioPath, e.Err)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}
