package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
)

// runIDLayout is the timestamp form of a run identifier, second resolution.
const runIDLayout = "20060102150405"

type videoInfo struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// CreateRun creates a fresh run directory under the output root and returns
// its handle. Creation is recursive and idempotent.
func (s *implStore) CreateRun(ctx context.Context) (Run, error) {
	id := s.now().Format(runIDLayout)
	dir := filepath.Join(s.outputRoot, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return Run{}, &StorageError{Op: "create run directory", Path: dir, Err: err}
	}

	s.logger.Info(ctx, "Created run directory: %s", dir)
	return Run{ID: id, Dir: dir}, nil
}

// WriteArtifact writes content to the artifact's fixed path inside the run
// directory, overwriting any previous write within the same run.
func (s *implStore) WriteArtifact(ctx context.Context, run Run, name string, content []byte) error {
	path := filepath.Join(run.Dir, name)

	if err := os.WriteFile(path, content, 0644); err != nil {
		return &StorageError{Op: "write artifact", Path: path, Err: err}
	}

	s.logger.Info(ctx, "Saved artifact: %s", path)
	return nil
}

// WriteVideoInfo persists the video_info.json artifact for the run.
func (s *implStore) WriteVideoInfo(ctx context.Context, run Run, url, title string) error {
	data, err := json.MarshalIndent(videoInfo{URL: url, Title: title}, "", "    ")
	if err != nil {
		return &StorageError{Op: "encode video info", Path: filepath.Join(run.Dir, VideoInfoFilename), Err: err}
	}

	return s.WriteArtifact(ctx, run, VideoInfoFilename, data)
}
