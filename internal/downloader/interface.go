package downloader

import "context"

// Downloader fetches the audio track of a video URL into a destination
// directory and reports the resolved file path and the video title.
type Downloader interface {
	DownloadAudio(ctx context.Context, url, destDir string) (audioPath, title string, err error)
}
