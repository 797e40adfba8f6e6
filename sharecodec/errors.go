// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sharecodec

import (
	"errors"
	"fmt"
)

// Decode failure categories. Every error returned by Decode matches exactly one.
var (
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidEncoding  = errors.New("invalid base64 encoding")
	ErrInvalidText      = errors.New("payload is not valid UTF-8")
	ErrInvalidStructure = errors.New("invalid payload structure")
)

// DecodeError pairs a failure category with its cause
type DecodeError struct {
	Kind error
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return "sharecodec: " + e.Kind.Error()
	}
	return fmt.Sprintf("sharecodec: %v: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func fail(kind error, format string, args ...any) error {
	return &DecodeError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Category returns the sentinel for a decode failure, or nil if err did not come from Decode
func Category(err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Kind
	}
	return nil
}
