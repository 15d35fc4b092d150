package contract

import "errors"

// Repository-level sentinel errors.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrVideoNotFound   = errors.New("video not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrReportNotFound  = errors.New("report not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrDuplicateEntry  = errors.New("duplicate entry")
)
