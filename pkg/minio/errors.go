package minio

import (
	"fmt"
)

// ////////////////////////////////////////////////////////////////////////////////////////////////////////////////////
// NoSuchKeyError - means that an object with that key does not exist
// ////////////////////////////////////////////////////////////////////////////////////////////////////////////////////
var NoSuchKeyError = fmt.Errorf("object does not exist")

type NoSuchKeyErrorWithDetails struct {
	Details string
}

func (e *NoSuchKeyErrorWithDetails) Error() string {
	return e.Details
}

func (e *NoSuchKeyErrorWithDetails) Unwrap() error {
	return NoSuchKeyError
}

// ////////////////////////////////////////////////////////////////////////////////////////////////////////////////////
// Missing Config Error - means that the connection to MinIO cannot be set up because settings are absent
// ////////////////////////////////////////////////////////////////////////////////////////////////////////////////////
var MissingConfigError = fmt.Errorf("missing MinIO configuration")

type MissingConfigErrorWithDetails struct {
	Details string
	Missing []string
}

func (e *MissingConfigErrorWithDetails) Error() string {
	return e.Details
}

func (e *MissingConfigErrorWithDetails) Unwrap() error {
	return MissingConfigError
}
