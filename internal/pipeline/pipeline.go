package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/dodoya1/youtube-transcriber/internal/enhancer"
	"github.com/dodoya1/youtube-transcriber/internal/storage"
)

// Run executes the full pipeline for one URL:
//
//	CreateRun → Acquire → PersistVideoInfo → Transcribe → [Refine] →
//	[Translate if detected language differs from the target] → Summarize
//
// Every mandatory-stage failure aborts immediately; artifacts written before
// the abort stay on disk as a partial record. Summarization is best effort
// and never aborts the run.
func (p *implPipeline) Run(ctx context.Context, url string) Result {
	started := time.Now()
	res := Result{URL: url}
	log := p.logger

	run, err := p.store.CreateRun(ctx)
	if err != nil {
		log.Error(ctx, "Failed to create run directory: %v", err)
		return p.abort(ctx, res, StageCreateRun, err)
	}
	res.Run = run
	log = log.WithField("run_id", run.ID)

	// Acquire
	audioPath, title, err := p.downloader.DownloadAudio(ctx, url, run.Dir)
	if err != nil {
		return p.abort(ctx, res, StageAcquire, err)
	}
	res.Title = title
	res.record(StageAcquire, StageSucceeded, nil)

	if err := p.store.WriteVideoInfo(ctx, run, url, title); err != nil {
		return p.abort(ctx, res, StageAcquire, err)
	}

	// Transcribe
	text, lang, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return p.abort(ctx, res, StageTranscribe, err)
	}
	if err := p.store.WriteArtifact(ctx, run, storage.TranscriptFilename, []byte(text)); err != nil {
		return p.abort(ctx, res, StageTranscribe, err)
	}
	res.DetectedLanguage = lang
	res.record(StageTranscribe, StageSucceeded, nil)

	// Refine
	currentText := text
	if p.cfg.RefineEnabled() {
		refined, err := p.enhancer.Refine(ctx, text)
		if err != nil {
			return p.abort(ctx, res, StageRefine, err)
		}
		if err := p.store.WriteArtifact(ctx, run, storage.RefinedTranscriptFilename, []byte(refined)); err != nil {
			return p.abort(ctx, res, StageRefine, err)
		}
		currentText = refined
		res.record(StageRefine, StageSucceeded, nil)
	} else {
		res.record(StageRefine, StageSkipped, nil)
	}

	// Translate, only when the detected language is known and differs from
	// the target. An unknown language never triggers translation.
	target := p.cfg.Pipeline.TargetLanguage
	if lang != "" && lang != target {
		translated, err := p.enhancer.Translate(ctx, currentText, target)
		if err != nil {
			return p.abort(ctx, res, StageTranslate, err)
		}
		if err := p.store.WriteArtifact(ctx, run, storage.TranslatedTranscriptFilename(target), []byte(translated)); err != nil {
			return p.abort(ctx, res, StageTranslate, err)
		}
		res.record(StageTranslate, StageSucceeded, nil)
	} else {
		if lang == "" {
			log.Info(ctx, "Detected language unknown, skipping translation")
		} else {
			log.Info(ctx, "Detected language %q matches target, skipping translation", lang)
		}
		res.record(StageTranslate, StageSkipped, nil)
	}

	// Summarize, best effort
	p.summarize(ctx, &res, currentText)

	res.Status = StatusCompleted
	log.Info(ctx, "Pipeline completed in %s. Results saved in: %s", time.Since(started).Round(time.Millisecond), run.Dir)
	return res
}

// summarize runs the summary stage and, when enabled, the docx export. Both
// are logged and swallowed on failure; the run still completes.
func (p *implPipeline) summarize(ctx context.Context, res *Result, text string) {
	summary, err := p.enhancer.Summarize(ctx, text)
	if err != nil {
		p.logger.Warn(ctx, "Summarization failed, continuing without summary: %v", err)
		res.record(StageSummarize, StageFailed, err)
		return
	}
	if err := p.store.WriteArtifact(ctx, res.Run, storage.SummaryFilename, []byte(summary)); err != nil {
		p.logger.Warn(ctx, "Failed to persist summary, continuing: %v", err)
		res.record(StageSummarize, StageFailed, err)
		return
	}
	res.record(StageSummarize, StageSucceeded, nil)

	if p.cfg.Pipeline.ExportDocx {
		docxPath := filepath.Join(res.Run.Dir, storage.SummaryDocxFilename)
		if err := enhancer.WriteSummaryDocx(res.Title, summary, docxPath); err != nil {
			p.logger.Warn(ctx, "Failed to export summary docx, continuing: %v", err)
		}
	}
}

// abort records the failed stage, logs the structured failure, and returns
// the terminal aborted result. Nothing written so far is rolled back.
func (p *implPipeline) abort(ctx context.Context, res Result, stage Stage, err error) Result {
	p.logger.WithField("stage", string(stage)).Error(ctx, "Pipeline aborted: %v", err)
	res.record(stage, StageFailed, err)
	res.Status = StatusAborted
	res.Err = err
	return res
}
