package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTextTooLong   = errors.New("text is too long")
	ErrInvalidSource = errors.New("source must be typed or speech")
	ErrTagNotFound   = errors.New("tag not found")
	ErrInvalidValue  = errors.New("invalid value for tag")
)
