package services

import "errors"

var (
	ErrSessionNotFound       = errors.New("session not found")
	ErrRowNotFound           = errors.New("row not found")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrReportNotFound        = errors.New("report not found")
	ErrInvalidDate           = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidSlot           = errors.New("invalid draw slot")
	ErrMissingCustomerName   = errors.New("customer name is required")
	ErrInvalidMultiplier     = errors.New("multiplier out of range")
	ErrEmptyReport           = errors.New("no customer data to save")
	ErrEmptySearch           = errors.New("enter a customer name or unsold numbers to search")
	ErrResultNotFound        = errors.New("result not found")
	ErrUnknownCategory       = errors.New("unknown prize category")
	ErrInvalidCropRegion     = errors.New("invalid crop region")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrRecognizerUnavailable = errors.New("no text recognizer configured")
)
