// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrConfigInvalid      = errors.New("invalid configuration")
	ErrStreamClosed       = errors.New("submission stream closed")
	ErrNoQuote            = errors.New("no quote data available")
	ErrEmptyCompletion    = errors.New("empty completion response")
)

// StreamError represents a fatal error on one source's submission stream.
type StreamError struct {
	Source string
	Err    error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("stream error [%s]: %v", e.Source, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

// NewStreamError creates a new StreamError.
func NewStreamError(source string, err error) *StreamError {
	return &StreamError{Source: source, Err: err}
}

// DataError represents a market-data lookup failure for one ticker.
type DataError struct {
	Ticker  string
	Message string
	Err     error
}

func (e *DataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("data error [%s]: %s: %v", e.Ticker, e.Message, e.Err)
	}
	return fmt.Sprintf("data error [%s]: %s", e.Ticker, e.Message)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// NewDataError creates a new DataError.
func NewDataError(ticker, message string, err error) *DataError {
	return &DataError{Ticker: ticker, Message: message, Err: err}
}

// ClassifyError represents a sentiment classification failure. It is only
// ever logged; the classifier converts it to an Unknown label.
type ClassifyError struct {
	Title string
	Err   error
}

func (e *ClassifyError) Error() string {
	return fmt.Sprintf("classify error for post %q: %v", e.Title, e.Err)
}

func (e *ClassifyError) Unwrap() error {
	return e.Err
}

// NewClassifyError creates a new ClassifyError.
func NewClassifyError(title string, err error) *ClassifyError {
	return &ClassifyError{Title: title, Err: err}
}

// DeliveryError represents a failure to persist or notify. Deliveries are
// never retried; the error is logged and dropped.
type DeliveryError struct {
	Channel string // "sheets", "journal", "email"
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery error [%s]: %v", e.Channel, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// NewDeliveryError creates a new DeliveryError.
func NewDeliveryError(channel string, err error) *DeliveryError {
	return &DeliveryError{Channel: channel, Err: err}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
