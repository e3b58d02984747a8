package crm

import "errors"

var (
	ErrNotConfigured    = errors.New("crm: base url and credentials are required")
	ErrEmptyAction      = errors.New("crm: action name is required")
	ErrUnauthorized     = errors.New("crm: unauthorized")
	ErrUnexpectedStatus = errors.New("crm: unexpected status")
)
