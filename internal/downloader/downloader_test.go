package downloader

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dodoya1/youtube-transcriber/internal/config"
	"github.com/dodoya1/youtube-transcriber/internal/logger"
)

// fakeExecutor records the invocation and returns canned output.
type fakeExecutor struct {
	dir    string
	name   string
	args   []string
	output string
	err    error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.name = name
	f.args = args
	return f.output, f.err
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	f.dir = dir
	return f.Execute(ctx, name, args...)
}

func newTestDownloader(exec *fakeExecutor) Downloader {
	cfg := config.DownloaderConfig{BinaryPath: "yt-dlp", AudioQuality: "192K"}
	return New(cfg, exec, logger.New("error", "text"))
}

func TestDownloadAudio(t *testing.T) {
	exec := &fakeExecutor{output: "[download] progress noise\nExample Talk\n"}
	d := newTestDownloader(exec)

	audioPath, title, err := d.DownloadAudio(context.Background(), "https://youtu.be/abc", "/runs/20250301100000")
	if err != nil {
		t.Fatalf("DownloadAudio() error = %v", err)
	}

	if title != "Example Talk" {
		t.Errorf("title = %q, want %q", title, "Example Talk")
	}
	if want := filepath.Join("/runs/20250301100000", "audio.mp3"); audioPath != want {
		t.Errorf("audioPath = %q, want %q", audioPath, want)
	}
	if exec.dir != "/runs/20250301100000" {
		t.Errorf("working dir = %q, want run dir", exec.dir)
	}
	if exec.name != "yt-dlp" {
		t.Errorf("binary = %q, want yt-dlp", exec.name)
	}

	wantArgs := map[string]bool{
		"bestaudio/best":       false,
		"mp3":                  false,
		"192K":                 false,
		"audio.%(ext)s":        false,
		"https://youtu.be/abc": false,
	}
	for _, a := range exec.args {
		if _, ok := wantArgs[a]; ok {
			wantArgs[a] = true
		}
	}
	for a, seen := range wantArgs {
		if !seen {
			t.Errorf("argument %q missing from yt-dlp invocation %v", a, exec.args)
		}
	}
}

func TestDownloadAudioTitleFallback(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{"empty output", ""},
		{"whitespace only", "  \n \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDownloader(&fakeExecutor{output: tt.output})
			_, title, err := d.DownloadAudio(context.Background(), "https://youtu.be/abc", t.TempDir())
			if err != nil {
				t.Fatalf("DownloadAudio() error = %v", err)
			}
			if title != "Unknown Title" {
				t.Errorf("title = %q, want fallback", title)
			}
		})
	}
}

func TestDownloadAudioFailure(t *testing.T) {
	d := newTestDownloader(&fakeExecutor{err: errors.New("video unavailable")})

	_, _, err := d.DownloadAudio(context.Background(), "https://youtu.be/gone", t.TempDir())
	if err == nil {
		t.Fatal("DownloadAudio() expected error")
	}

	var acqErr *AcquisitionError
	if !errors.As(err, &acqErr) {
		t.Errorf("error %v is not an *AcquisitionError", err)
	}
	if acqErr.URL != "https://youtu.be/gone" {
		t.Errorf("AcquisitionError.URL = %q", acqErr.URL)
	}
}
