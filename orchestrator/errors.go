package orchestrator

import "errors"

var (
	// ErrValidation covers malformed requests: unknown language, bad mode,
	// missing fields. Raised before any remote call.
	ErrValidation = errors.New("validation failed")
	// ErrNotVerified gates all execution on a verified email address.
	ErrNotVerified = errors.New("email not verified")
	ErrProblemNotFound = errors.New("problem not found")
	// ErrJudgeUnavailable marks a failed judge round trip. Fatal for the
	// current execution; nothing is persisted.
	ErrJudgeUnavailable = errors.New("judge unavailable")
	// ErrPersistence marks a store write failure after judging completed.
	ErrPersistence = errors.New("persistence failed")
)
