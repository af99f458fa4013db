package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidValue  = errors.New("invalid value")
	ErrTransposition = errors.New("transposition failed")
	ErrLayout        = errors.New("layout failed")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidKey         ErrorKind = "invalid_key"
	KindKeyQualityMismatch ErrorKind = "key_quality_mismatch"
	KindInvalidNote        ErrorKind = "invalid_note"
	KindInvalidChord       ErrorKind = "invalid_chord"
	KindInvalidFret        ErrorKind = "invalid_fret"
	KindInvalidString      ErrorKind = "invalid_string"
	KindInvalidTiming      ErrorKind = "invalid_timing"
	KindInvalidMeter       ErrorKind = "invalid_meter"
	KindNoStringBelow      ErrorKind = "no_string_below"
	KindNoStringAbove      ErrorKind = "no_string_above"
	KindTransposition      ErrorKind = "transposition"
	KindLayout             ErrorKind = "layout"
	KindNotFound           ErrorKind = "not_found"
	KindInvalidConfig      ErrorKind = "invalid_config"
	KindExecution          ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the outermost OpError in err's chain, or KindExecution.
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return KindExecution
}

func invalid(op string, kind ErrorKind, format string, args ...any) error {
	return &OpError{
		Op:   op,
		Kind: kind,
		Err:  fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidValue),
	}
}
