package pipeline

import (
	"github.com/dodoya1/youtube-transcriber/internal/config"
	"github.com/dodoya1/youtube-transcriber/internal/downloader"
	"github.com/dodoya1/youtube-transcriber/internal/enhancer"
	"github.com/dodoya1/youtube-transcriber/internal/logger"
	"github.com/dodoya1/youtube-transcriber/internal/storage"
	"github.com/dodoya1/youtube-transcriber/internal/transcriber"
)

type implPipeline struct {
	cfg         *config.Config
	store       storage.Store
	downloader  downloader.Downloader
	transcriber transcriber.Transcriber
	enhancer    enhancer.Enhancer
	logger      logger.Logger
}

// New wires the pipeline from its collaborators. Configuration is read-only
// after startup; the pipeline itself holds no mutable state across runs.
func New(cfg *config.Config, store storage.Store, dl downloader.Downloader, tr transcriber.Transcriber, enh enhancer.Enhancer, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		store:       store,
		downloader:  dl,
		transcriber: tr,
		enhancer:    enh,
		logger:      log,
	}
}
