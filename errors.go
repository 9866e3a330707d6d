package readsupport

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfiguration is matched by errors reporting configuration
	// properties or options with invalid values.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// MalformedSchemaError is returned when the logical schema of a read request
// cannot be built: type strings that do not parse, or column and type lists of
// different lengths.
type MalformedSchemaError struct {
	Reason string
	Err    error
}

func (e *MalformedSchemaError) Error() string {
	if e.Err != nil {
		return "malformed schema: " + e.Reason + ": " + e.Err.Error()
	}
	return "malformed schema: " + e.Reason
}

func (e *MalformedSchemaError) Unwrap() error { return e.Err }

// IllegalStateError reports a broken contract between the steps of a read,
// for example preparing a read with a context that Init never produced.
type IllegalStateError struct {
	Reason string
}

func (e *IllegalStateError) Error() string { return "illegal state: " + e.Reason }

func errorMalformedSchema(reason string, err error) error {
	return &MalformedSchemaError{Reason: reason, Err: err}
}

func errorInvalidOptionValue(optionName string, optionValue interface{}) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidConfiguration, optionName, optionValue)
}

func errorInvalidConfiguration(reasons ...error) error {
	var err *invalidConfiguration

	for _, reason := range reasons {
		if reason != nil {
			if err == nil {
				err = new(invalidConfiguration)
			}
			err.reasons = append(err.reasons, reason)
		}
	}

	if err != nil {
		return err
	}

	return nil
}

type invalidConfiguration struct {
	reasons []error
}

func (err *invalidConfiguration) Error() string {
	errorMessage := new(strings.Builder)
	for _, reason := range err.reasons {
		errorMessage.WriteString(reason.Error())
		errorMessage.WriteString("\n")
	}
	errorString := errorMessage.String()
	if errorString != "" {
		errorString = errorString[:len(errorString)-1]
	}
	return errorString
}

func (err *invalidConfiguration) Is(target error) bool { return target == ErrInvalidConfiguration }
