package transcriber

import "context"

// Transcriber converts an audio file to text. Language is the detected
// source-language code, or empty when the engine could not determine one.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (text, language string, err error)
}
