package sos

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
)
