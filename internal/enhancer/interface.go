package enhancer

import "context"

// Enhancer is the Gemini-backed text stage collaborator. All three
// operations share one shape: text in, text out, system prompt loaded from
// the prompts directory.
type Enhancer interface {
	Refine(ctx context.Context, text string) (string, error)
	Translate(ctx context.Context, text, targetLang string) (string, error)
	Summarize(ctx context.Context, text string) (string, error)
}
