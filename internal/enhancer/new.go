package enhancer

import (
	"context"

	"github.com/dodoya1/youtube-transcriber/internal/config"
	"github.com/dodoya1/youtube-transcriber/internal/logger"
)

type implEnhancer struct {
	cfg        config.GeminiConfig
	promptsDir string
	logger     logger.Logger

	// generate performs one text-generation call. Swappable in tests.
	generate func(ctx context.Context, prompt string) (string, error)
}

// New creates an Enhancer calling the Gemini API with the credential and
// model from cfg. Prompt files are read from promptsDir on every invocation.
func New(cfg config.GeminiConfig, promptsDir string, log logger.Logger) Enhancer {
	e := &implEnhancer{
		cfg:        cfg,
		promptsDir: promptsDir,
		logger:     log,
	}
	e.generate = e.callGemini
	return e
}
