package storage

import (
	"time"

	"github.com/dodoya1/youtube-transcriber/internal/logger"
)

type implStore struct {
	outputRoot string
	logger     logger.Logger
	now        func() time.Time
}

// New creates a Store rooted at outputRoot. The root does not need to exist
// yet; run directories are created recursively.
func New(outputRoot string, log logger.Logger) Store {
	return &implStore{
		outputRoot: outputRoot,
		logger:     log,
		now:        time.Now,
	}
}
