package downloader

import (
	"github.com/dodoya1/youtube-transcriber/internal/config"
	"github.com/dodoya1/youtube-transcriber/internal/logger"
	"github.com/dodoya1/youtube-transcriber/pkg/executor"
)

type implDownloader struct {
	cfg      config.DownloaderConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Downloader backed by the yt-dlp binary from cfg.
func New(cfg config.DownloaderConfig, exec executor.Executor, log logger.Logger) Downloader {
	return &implDownloader{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
