package app

import (
	"errors"
	"fmt"
)

// InvalidRequestError is special error type returned when any request params are invalid.
// It is always raised before any call to github is made.
type InvalidRequestError string

// Error implements error interface.
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequestError checks if given error is caused by invalid request.
func IsInvalidRequestError(err error) bool {
	var ire InvalidRequestError
	return errors.As(err, &ire)
}

// ConnectivityError is returned when github could not be reached at all
// (dns failure, timeout, connection reset).
type ConnectivityError string

// Error implements error interface.
func (e ConnectivityError) Error() string {
	return string(e)
}

// IsConnectivityError checks if given error is caused by a transport failure.
func IsConnectivityError(err error) bool {
	var ce ConnectivityError
	return errors.As(err, &ce)
}

// ParseError is returned when github response body is not valid json.
type ParseError string

// Error implements error interface.
func (e ParseError) Error() string {
	return string(e)
}

// IsParseError checks if given error is caused by an unparsable github response.
func IsParseError(err error) bool {
	var pe ParseError
	return errors.As(err, &pe)
}

// UpstreamError is returned when github responded with a non-success status.
// StatusCode always carries the original upstream code.
type UpstreamError struct {
	StatusCode int
	Message    string
}

// Error implements error interface.
func (e UpstreamError) Error() string {
	return fmt.Sprintf("github responded with status %d: %s", e.StatusCode, e.Message)
}

// IsUpstreamError checks if given error is caused by a github error response.
func IsUpstreamError(err error) bool {
	var ue UpstreamError
	return errors.As(err, &ue)
}
