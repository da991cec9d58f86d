package elt

import "github.com/eltkit/elt/internal/errors"

// Error is the structured error returned by the builder.
type Error = errors.Error

// Sentinels for errors.Is. Errors match by code, so details and causes
// attached at the failure site do not affect matching.
var (
	// ErrMissingContext: no document to create nodes in.
	ErrMissingContext = errors.New(errors.CodeMissingContext)

	// ErrRejectedOperation: the DOM refused an operation. The DOM's
	// *dom.Exception is wrapped.
	ErrRejectedOperation = errors.New(errors.CodeRejected)

	// ErrPropertyShapeMismatch: a property value does not match its key.
	ErrPropertyShapeMismatch = errors.New(errors.CodeShapeMismatch)
)
