package storage

import "fmt"

// Fixed artifact filenames within a run directory. A rerun always gets a new
// directory, so these never collide across runs.
const (
	VideoInfoFilename         = "video_info.json"
	TranscriptFilename        = "transcript.txt"
	RefinedTranscriptFilename = "transcript_refined.txt"
	SummaryFilename           = "summary.txt"
	SummaryDocxFilename       = "summary.docx"
	AudioFilename             = "audio.mp3"
)

// TranslatedTranscriptFilename returns the filename for the transcript
// translated into lang, e.g. transcript_ja.txt.
func TranslatedTranscriptFilename(lang string) string {
	return fmt.Sprintf("transcript_%s.txt", lang)
}
