package util

import "errors"

var (
	ErrSessionNotFound    = errors.New("assessment session not found or expired")
	ErrSessionComplete    = errors.New("assessment session already completed")
	ErrNoPendingQuestion  = errors.New("no question pending for this session")
	ErrQuestionMismatch   = errors.New("answer does not reference the pending question")
	ErrEmptyQuestionBank  = errors.New("question bank is empty")
	ErrCatalogUnavailable = errors.New("course catalog unavailable")
)
