package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable indicates the provider is not configured or is unavailable.
var ErrProviderUnavailable = errors.New("provider unavailable")

// FetchError captures a failed upstream fetch: a non-2xx answer, a transport
// failure or a body that could not be decoded.
type FetchError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *FetchError) Error() string {
	msg := "fetch failed"
	if e.Provider != "" {
		msg = e.Provider + ": " + msg
	}
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}
