// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure class. The typed errors below match them with errors.Is.
var (
	// ErrMalformedInput indicates a stage could not interpret its input.
	ErrMalformedInput = errors.New("malformed input")

	// ErrMissingBackground indicates there was nothing to derive the canvas size from.
	ErrMissingBackground = errors.New("missing background")

	// ErrConfiguration indicates invalid render options.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrBackend indicates the backend could not produce output.
	ErrBackend = errors.New("backend failure")
)

// MalformedInputError reports text a stage could not interpret.
type MalformedInputError struct {
	Stage string
	Span  Span
	// Text is the offending source text.
	Text string
	Err  error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%s: %s at %s %q: %v", ErrMalformedInput, e.Stage, e.Span, e.Text, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// MissingBackgroundError is returned when the collection holds no Background.
type MissingBackgroundError struct {
	// Entities is the size of the collection that was searched.
	Entities int
}

func (e *MissingBackgroundError) Error() string {
	return fmt.Sprintf("%s among %d entities", ErrMissingBackground, e.Entities)
}

func (e *MissingBackgroundError) Is(target error) bool {
	return target == ErrMissingBackground
}

// ConfigurationError reports an invalid render option.
type ConfigurationError struct {
	Param  string
	Value  interface{}
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s=%v: %s", ErrConfiguration, e.Param, e.Value, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// BackendError reports a failure to produce output.
type BackendError struct {
	Format Format
	Op     string
	Err    error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrBackend, e.Format, e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func (e *BackendError) Is(target error) bool {
	return target == ErrBackend
}

// StageError identifies the pipeline stage a failure originated from.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
