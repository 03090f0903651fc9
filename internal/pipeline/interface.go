package pipeline

import "context"

// Pipeline processes exactly one video URL per call, synchronously, start to
// finish. The returned Result is always usable; its Status says whether the
// run completed or aborted.
type Pipeline interface {
	Run(ctx context.Context, url string) Result
}
