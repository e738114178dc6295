package adtfn

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrUnmatched is matched by every error reporting a variant without a handler.
	ErrUnmatched = errors.New("adtfn: unmatched variant")

	// ErrInvalidPayload is matched by every ConstructionError.
	ErrInvalidPayload = errors.New("adtfn: invalid variant payload")
)

// UnmatchedVariantError is returned when a match is dispatched on a variant
// for which no handler exists.
type UnmatchedVariantError struct {
	Sum     string
	Variant string
}

func (e *UnmatchedVariantError) Error() string {
	return fmt.Sprintf("%s: no handler for variant %q", e.Sum, e.Variant)
}

func (e *UnmatchedVariantError) Is(target error) bool {
	return target == ErrUnmatched
}

// IncompleteMatchError is returned by NewMatcher when the supplied cases do not
// cover the sum type exactly once per variant.
type IncompleteMatchError struct {
	Sum       string
	Missing   []string
	Unknown   []string
	Duplicate []string
}

func (e *IncompleteMatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, "unknown "+strings.Join(e.Unknown, ", "))
	}
	if len(e.Duplicate) > 0 {
		parts = append(parts, "duplicate "+strings.Join(e.Duplicate, ", "))
	}
	return fmt.Sprintf("match over %s is incomplete: %s", e.Sum, strings.Join(parts, "; "))
}

func (e *IncompleteMatchError) Is(target error) bool {
	return target == ErrUnmatched
}

// ConstructionError reports a variant payload rejected by its constructor.
type ConstructionError struct {
	Sum     string
	Variant string
	Field   string
	Reason  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("cannot construct %s.%s: %s: %v", e.Sum, e.Variant, e.Field, e.Reason)
}

func (e *ConstructionError) Unwrap() error {
	return e.Reason
}

func (e *ConstructionError) Is(target error) bool {
	return target == ErrInvalidPayload
}

// Invalidf builds a ConstructionError for the given variant field.
func Invalidf(sum Sum, variant, field, format string, args ...any) error {
	return &ConstructionError{
		Sum:     sum.Name(),
		Variant: variant,
		Field:   field,
		Reason:  fmt.Errorf(format, args...),
	}
}

// Unmatched reports v as a value that no branch of a match over sum accepts.
// It is meant for the fallthrough of a type switch over a sealed interface.
func Unmatched(sum Sum, v any) error {
	return &UnmatchedVariantError{Sum: sum.Name(), Variant: tagOf(v)}
}

func tagOf(v any) string {
	if v == nil {
		return "<nil>"
	}
	// a nil pointer still satisfies Variant, but calling a value receiver
	// method through it would panic
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return fmt.Sprintf("%T(nil)", v)
	}
	switch t := v.(type) {
	case Variant:
		return t.Variant()
	default:
		return fmt.Sprintf("%T", v)
	}
}
