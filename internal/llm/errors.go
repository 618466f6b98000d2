package llm

import "errors"

var (
	// ErrOracleUnavailable indicates the oracle transport produced no
	// response payload. Never retried.
	ErrOracleUnavailable = errors.New("oracle unavailable")

	// ErrTimeout indicates the oracle request exceeded the configured
	// timeout. Treated as a transport failure, never retried.
	ErrTimeout = errors.New("oracle request timed out")

	// ErrOracleReported indicates the oracle itself reported an error in
	// its response metadata (rate limit, model failure). A retry with a
	// corrective prompt cannot fix these, so they are fatal.
	ErrOracleReported = errors.New("oracle reported an error")

	// ErrEmptyResponse indicates the response carried no text fragments.
	ErrEmptyResponse = errors.New("oracle returned empty text")

	// ErrInvalidJSON indicates the response text was not parseable JSON.
	ErrInvalidJSON = errors.New("oracle output is not valid JSON")

	// ErrSchemaMismatch indicates well-formed JSON that does not conform
	// to the declared schema.
	ErrSchemaMismatch = errors.New("oracle output does not match schema")

	// ErrRetryExhausted indicates every attempt produced a retryable
	// content failure.
	ErrRetryExhausted = errors.New("oracle retry attempts exhausted")
)
