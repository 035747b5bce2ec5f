package util

import "errors"

var (
	ErrInvalidClassNumber   = errors.New("invalid class number")
	ErrInvalidChapterNumber = errors.New("invalid chapter number")
	ErrUnknownDriver        = errors.New("unknown database driver")
	ErrCountMismatch        = errors.New("denormalized counts do not match child rows")
)
