package downloader

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/dodoya1/youtube-transcriber/internal/storage"
)

// fallbackTitle is used when the source does not supply a title.
const fallbackTitle = "Unknown Title"

// DownloadAudio downloads the best audio stream of url, transcoded to mp3,
// into destDir as audio.mp3. yt-dlp runs inside destDir so the output
// template stays a plain relative name.
func (d *implDownloader) DownloadAudio(ctx context.Context, url, destDir string) (string, string, error) {
	d.logger.Info(ctx, "Starting audio download: %s", url)

	// --print after_move:title with --no-simulate downloads the file and
	// prints the resolved title to stdout afterwards.
	args := []string{
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", "mp3",
		"--audio-quality", d.cfg.AudioQuality,
		"-o", "audio.%(ext)s",
		"--no-simulate",
		"--print", "after_move:title",
		url,
	}

	out, err := d.executor.ExecuteInDir(ctx, destDir, d.cfg.BinaryPath, args...)
	if err != nil {
		return "", "", &AcquisitionError{URL: url, Err: err}
	}

	title := lastLine(out)
	if title == "" {
		title = fallbackTitle
	}

	audioPath := filepath.Join(destDir, storage.AudioFilename)
	d.logger.Info(ctx, "Audio download completed. Title: %s, Path: %s", title, audioPath)
	return audioPath, title, nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
