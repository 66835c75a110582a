package types

import "errors"

var (
	ErrNoRequestsFound     = errors.New("no valid migration requests (locator + status) found in CSV")
	ErrAccountsDirNotFound = errors.New("accounts directory not found in source data")
	ErrPoliciesDirNotFound = errors.New("policies directory not found in source data")
)
