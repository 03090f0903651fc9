package enhancer

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Refine cleans a raw transcript for grammar and fluency without changing
// its meaning.
func (e *implEnhancer) Refine(ctx context.Context, text string) (string, error) {
	e.logger.Info(ctx, "Refining transcript with %s", e.cfg.Model)

	systemPrompt := e.loadPrompt(ctx, refinePromptFilename)
	out, err := e.generate(ctx, buildPrompt(systemPrompt, text))
	if err != nil {
		return "", &RefinementError{Err: err}
	}
	return out, nil
}

// Translate produces a version of text in targetLang.
func (e *implEnhancer) Translate(ctx context.Context, text, targetLang string) (string, error) {
	e.logger.Info(ctx, "Translating transcript to %s with %s", targetLang, e.cfg.Model)

	systemPrompt := e.loadPrompt(ctx, translatePromptFilename)
	instruction := fmt.Sprintf("%s\n\nTranslate the following text into %q. Output only the translation.", systemPrompt, targetLang)
	out, err := e.generate(ctx, buildPrompt(instruction, text))
	if err != nil {
		return "", &TranslationError{TargetLang: targetLang, Err: err}
	}
	return out, nil
}

// Summarize produces a condensed version of text.
func (e *implEnhancer) Summarize(ctx context.Context, text string) (string, error) {
	e.logger.Info(ctx, "Summarizing transcript with %s", e.cfg.Model)

	systemPrompt := e.loadPrompt(ctx, summaryPromptFilename)
	out, err := e.generate(ctx, buildPrompt(systemPrompt, text))
	if err != nil {
		return "", &SummarizationError{Err: err}
	}
	return out, nil
}

// callGemini sends one prompt to the Gemini API and returns the response
// text. Exactly one attempt; retrying is not this layer's job.
func (e *implEnhancer) callGemini(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  e.cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, e.cfg.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return text, nil
}
