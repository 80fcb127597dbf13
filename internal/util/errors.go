package util

import "errors"

var (
	ErrEmailRegistered      = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrStudentNotFound      = errors.New("student not found")
	ErrSubscriptionRequired = errors.New("active subscription required")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrInvalidAcademicYear  = errors.New("academic year must be formatted YYYY-YYYY")
	ErrNotPrimaryGuardian   = errors.New("primary guardian role required")
)
