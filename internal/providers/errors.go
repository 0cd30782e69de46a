package providers

import "errors"

// ErrFetcherUnavailable reports a wrapper invoked without an inner fetcher.
var ErrFetcherUnavailable = errors.New("fetcher unavailable")

// BusinessError reports an envelope that decoded successfully but carried a
// non-success status. Message is the envelope's failure reason.
type BusinessError struct {
	Status  string
	Message string
}

func (e *BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "upstream reported failure"
}

// AsBusinessError attempts to unwrap an error into a BusinessError.
func AsBusinessError(err error) (*BusinessError, bool) {
	var bizErr *BusinessError
	if errors.As(err, &bizErr) {
		return bizErr, true
	}
	return nil, false
}
