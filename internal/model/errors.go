package model

import "errors"

var (
	ErrUnknownField      = errors.New("unknown draft field")
	ErrInvalidFieldValue = errors.New("invalid draft field value")
)
