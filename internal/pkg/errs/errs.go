package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark makes errs.Is(err, markErr) true while keeping err's message and stack.
// The stdlib errors.Is does not see the mark.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// WrapAs wraps a low-level failure with context and classifies it under a sentinel
// the handlers know how to map.
func WrapAs(err error, msg string, markErr error) error {
	if err == nil {
		return nil
	}
	return cr.Mark(cr.Wrap(err, msg), markErr)
}

// Is also matches references attached with Mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// IsAny reports whether err matches one of the references.
func IsAny(err error, references ...error) bool {
	return cr.IsAny(err, references...)
}

// ExtractStackLines renders err with its recorded stack, cut to maxLines.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
