package parser

import "errors"

var (
	ErrTagNotFound     = errors.New("tag not found")
	ErrInvalidTagValue = errors.New("invalid value for tag type")
)
