package types

import (
	"errors"
	"fmt"
)

var (
	// ErrRange indicates a span range outside the current buffer.
	ErrRange = errors.New("span range out of bounds")

	// ErrConfig indicates a missing or invalid required parameter.
	ErrConfig = errors.New("invalid span configuration")

	// ErrSpanNotFound indicates that a handle does not name a live span.
	ErrSpanNotFound = errors.New("span not found")
)

// RangeError describes a rejected [Start, End) range against a buffer of Len units.
type RangeError struct {
	Field string
	Start int
	End   int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid %s index: range [%d, %d) in buffer of length %d", e.Field, e.Start, e.End, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrRange }

// ConfigError names the parameter that was missing or invalid.
type ConfigError struct {
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid %s", e.Param)
	}
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

// CheckRange validates [start, end) against a buffer of length n.
// start == n is rejected even for an empty range.
func CheckRange(start, end, n int) error {
	if start < 0 || start >= n {
		return &RangeError{Field: "start", Start: start, End: end, Len: n}
	}
	if end < start || end > n {
		return &RangeError{Field: "end", Start: start, End: end, Len: n}
	}
	return nil
}
