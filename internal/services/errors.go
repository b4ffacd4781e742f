package services

import "errors"

// Sentinel errors returned by the service layer; handlers map them to HTTP
// status codes.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrDuplicateCompany   = errors.New("a company with that name already exists")
	ErrDuplicateSource    = errors.New("a scraping source with that name already exists")
	ErrAlreadyApplied     = errors.New("an application for this offer already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user is inactive")
)
