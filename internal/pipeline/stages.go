package pipeline

import "github.com/dodoya1/youtube-transcriber/internal/storage"

// Stage names the steps of the pipeline in execution order.
type Stage string

const (
	StageCreateRun  Stage = "create_run"
	StageAcquire    Stage = "acquire"
	StageTranscribe Stage = "transcribe"
	StageRefine     Stage = "refine"
	StageTranslate  Stage = "translate"
	StageSummarize  Stage = "summarize"
)

// StageStatus is the outcome of one stage within a run.
type StageStatus string

const (
	StageSucceeded StageStatus = "succeeded"
	StageFailed    StageStatus = "failed"
	// StageSkipped marks a stage whose guard decided it should not run
	// (refine disabled, translation not triggered).
	StageSkipped StageStatus = "skipped"
)

// StageOutcome records what happened to a single stage.
type StageOutcome struct {
	Stage  Stage
	Status StageStatus
	Err    error
}

// Status is the terminal state of a run. There is no retry state.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusAborted   Status = "aborted"
)

// Result is the full account of one run. When Status is StatusAborted, Err
// holds the failure of the mandatory stage that stopped the pipeline;
// artifacts written before the abort remain on disk.
type Result struct {
	Status           Status
	Run              storage.Run
	URL              string
	Title            string
	DetectedLanguage string
	Stages           []StageOutcome
	Err              error
}

func (r *Result) record(stage Stage, status StageStatus, err error) {
	r.Stages = append(r.Stages, StageOutcome{Stage: stage, Status: status, Err: err})
}

// StageOutcome returns the recorded outcome for stage, if the pipeline
// reached it.
func (r *Result) StageOutcome(stage Stage) (StageOutcome, bool) {
	for _, o := range r.Stages {
		if o.Stage == stage {
			return o, true
		}
	}
	return StageOutcome{}, false
}
