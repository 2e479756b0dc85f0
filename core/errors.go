package core

import (
	"errors"
	"regexp"
)

// ErrNotFound is a sentinel error for "not found" cases
var ErrNotFound = errors.New("not found")

// ErrDeliveryFailed marks a webhook POST that never produced an HTTP response.
var ErrDeliveryFailed = errors.New("webhook delivery failed")

var notFoundRegex = regexp.MustCompile(`(?i)not found`)

// IsNotFoundError checks if an error is a "not found" error.
// Besides ErrNotFound it matches REST errors whose message reports a missing resource.
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotFound) {
		return true
	}
	return notFoundRegex.MatchString(err.Error())
}

// IsDeliveryFailure reports whether err came from a failed webhook POST.
func IsDeliveryFailure(err error) bool {
	return errors.Is(err, ErrDeliveryFailed)
}
