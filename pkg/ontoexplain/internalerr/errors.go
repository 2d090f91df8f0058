package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound                 = errors.New("not found")
	ErrInvalidSelection         = errors.New("invalid selection")
	ErrInvalidExplanationChoice = errors.New("invalid explanation choice")
	ErrCollaborator             = errors.New("collaborator failure")
	ErrNoJustification          = errors.New("no justification found")
	ErrInvalidDocument          = errors.New("invalid ontology document")
	ErrStoreUnavailable         = errors.New("store unavailable")
	ErrInvalidConfig            = errors.New("invalid configuration")
)
