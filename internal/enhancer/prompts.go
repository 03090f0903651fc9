package enhancer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Prompt resource filenames inside the prompts directory.
const (
	refinePromptFilename    = "system_prompt_refine.txt"
	translatePromptFilename = "system_prompt_translate.txt"
	summaryPromptFilename   = "system_prompt.txt"
)

// loadPrompt reads a prompt resource. A missing or unreadable file degrades
// to an empty prompt instead of failing the stage.
func (e *implEnhancer) loadPrompt(ctx context.Context, filename string) string {
	path := filepath.Join(e.promptsDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		e.logger.Warn(ctx, "Prompt file unavailable, using empty prompt: %s (%v)", path, err)
		return ""
	}

	return strings.TrimSpace(string(data))
}

// buildPrompt joins the system prompt and the payload text the way the
// Gemini stages expect them.
func buildPrompt(systemPrompt, text string) string {
	return fmt.Sprintf("%s\n\n---\n\n%s", systemPrompt, text)
}
