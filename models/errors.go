package models

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEntryNotFound = errors.New("entry not found")

	ErrInvalidIndex  = errors.New("invalid item index")
	ErrCorruptItems  = errors.New("invalid item format")
	ErrPhoneMismatch = errors.New("phone number mismatch")
)
