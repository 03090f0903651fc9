package storage

import "context"

// Run is one pipeline execution's durable home on disk. ID is derived from
// the creation timestamp; Dir is the directory every artifact of the run is
// written into.
type Run struct {
	ID  string
	Dir string
}

// Store creates run directories and writes named artifacts into them.
type Store interface {
	CreateRun(ctx context.Context) (Run, error)
	WriteArtifact(ctx context.Context, run Run, name string, content []byte) error
	WriteVideoInfo(ctx context.Context, run Run, url, title string) error
}
