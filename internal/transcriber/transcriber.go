package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// whisperOutput mirrors the relevant parts of whisper.cpp's -oj JSON file.
type whisperOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []struct {
		Text string `json:"text"`
	} `json:"transcription"`
}

// Transcribe runs the whisper.cpp CLI on audioPath and returns the full
// transcript text plus the detected language code. The model is loaded fresh
// on every call; loading is the expensive part and happens exactly once per
// run.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (string, string, error) {
	modelPath := filepath.Join(t.cfg.ModelDir, fmt.Sprintf("ggml-%s.bin", t.cfg.ModelSize))
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Loading whisper model (%s) and transcribing: %s", t.cfg.ModelSize, audioPath)

	// -oj writes <prefix>.json with segments and the detected language.
	// -l auto lets the model detect the source language.
	// -ng forces CPU inference.
	args := []string{
		"-m", modelPath,
		"-f", audioPath,
		"-oj",
		"-l", "auto",
		"-ng",
		"-t", strconv.Itoa(t.cfg.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return "", "", &TranscriptionError{AudioPath: audioPath, Err: err}
	}

	jsonPath := outputPrefix + ".json"
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return "", "", &TranscriptionError{AudioPath: audioPath, Err: fmt.Errorf("read whisper output: %w", err)}
	}

	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return "", "", &TranscriptionError{AudioPath: audioPath, Err: fmt.Errorf("parse whisper output: %w", err)}
	}

	var sb strings.Builder
	for _, seg := range out.Transcription {
		sb.WriteString(seg.Text)
	}
	text := strings.TrimSpace(sb.String())

	lang := normalizeLanguage(out.Result.Language)
	if lang == "" {
		t.logger.Warn(ctx, "Whisper did not report a source language for %s", audioPath)
	} else {
		t.logger.Info(ctx, "Transcription completed, detected language: %s", lang)
	}

	return text, lang, nil
}

// normalizeLanguage maps whisper's "can't tell" answers to the empty string.
func normalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "auto" || lang == "unknown" {
		return ""
	}
	return lang
}
