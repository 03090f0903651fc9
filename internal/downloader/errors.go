package downloader

import "fmt"

// AcquisitionError reports a failed download or transcode. The pipeline never
// retries these.
type AcquisitionError struct {
	URL string
	Err error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("acquisition: download %s: %v", e.URL, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}
