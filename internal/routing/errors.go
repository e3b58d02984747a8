package routing

import "errors"

var (
	ErrEmptyText        = errors.New("text is required")
	ErrCRMNotConfigured = errors.New("crm is not configured; enable dry run or set crm credentials")
	ErrDispatchFailed   = errors.New("crm dispatch failed")
)
