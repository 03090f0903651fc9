package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/dodoya1/youtube-transcriber/internal/config"
	"github.com/dodoya1/youtube-transcriber/internal/downloader"
	"github.com/dodoya1/youtube-transcriber/internal/enhancer"
	"github.com/dodoya1/youtube-transcriber/internal/logger"
	"github.com/dodoya1/youtube-transcriber/internal/pipeline"
	"github.com/dodoya1/youtube-transcriber/internal/storage"
	"github.com/dodoya1/youtube-transcriber/internal/transcriber"
	"github.com/dodoya1/youtube-transcriber/pkg/executor"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load() // loads .env when present

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The Gemini credential is required before any stage runs; failing here
	// beats failing mid-run after a long transcription.
	cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	if cfg.Gemini.APIKey == "" {
		fmt.Fprintln(os.Stderr, "GEMINI_API_KEY is not set. Set it in the environment or in a .env file.")
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "YouTube transcription pipeline starting")
	log.Info(ctx, "Whisper model: %s, target language: %s", cfg.Whisper.ModelSize, cfg.Pipeline.TargetLanguage)

	url, err := readURL(os.Stdin)
	if err != nil {
		log.Error(ctx, "Failed to read URL: %v", err)
		os.Exit(1)
	}
	log.Info(ctx, "Input URL: %s", url)

	exec := executor.New()
	store := storage.New(cfg.Paths.Output, log)
	dl := downloader.New(cfg.Downloader, exec, log)
	tr := transcriber.New(cfg.Whisper, exec, log)
	enh := enhancer.New(cfg.Gemini, cfg.Paths.Prompts, log)

	p := pipeline.New(cfg, store, dl, tr, enh, log)
	res := p.Run(ctx, url)

	// Stage failures were already logged by the orchestrator; the process
	// still exits cleanly either way.
	if res.Status == pipeline.StatusAborted {
		log.Error(ctx, "Run aborted. Partial results remain in: %s", res.Run.Dir)
		return
	}
	log.Info(ctx, "Run completed. Results saved in: %s", res.Run.Dir)
}

// readURL prompts for and reads the single video URL for this run.
func readURL(in *os.File) (string, error) {
	fmt.Print("Enter a YouTube URL: ")

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("no input")
	}

	url := strings.TrimSpace(scanner.Text())
	if url == "" {
		return "", fmt.Errorf("empty URL")
	}
	return url, nil
}
