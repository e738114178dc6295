package adtfn

import (
	"fmt"
	"slices"
)

// Variant is implemented by every member of a closed sum type.
type Variant interface {
	// Variant returns the tag naming the active variant.
	Variant() string
}

// Sum names a closed set of variant tags.
//
// A Sum is a value: it carries no behavior beyond describing which tags a
// match must cover. Build one per sum type with NewSum, usually as a package
// level variable next to the variant types.
type Sum struct {
	name string
	tags []string
}

// NewSum declares a sum type called name with the given variant tags.
//
// NewSum panics if no tags are given, if a tag is empty or if a tag is
// declared twice.
func NewSum(name string, tags ...string) Sum {
	if len(tags) == 0 {
		panic(fmt.Sprintf("adtfn.NewSum: %s declares no variants", name))
	}
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if tag == "" {
			panic(fmt.Sprintf("adtfn.NewSum: %s declares an empty variant tag", name))
		}
		if _, ok := seen[tag]; ok {
			panic(fmt.Sprintf("adtfn.NewSum: %s declares variant %q twice", name, tag))
		}
		seen[tag] = struct{}{}
	}
	return Sum{name: name, tags: slices.Clone(tags)}
}

// Name returns the name of the sum type.
func (s Sum) Name() string {
	return s.name
}

// Variants returns the declared tags in declaration order.
func (s Sum) Variants() []string {
	return slices.Clone(s.tags)
}

// Has reports whether tag is one of the declared variants.
func (s Sum) Has(tag string) bool {
	return slices.Contains(s.tags, tag)
}

// Case binds a handler to one variant tag. Build cases with On.
type Case[V Variant, R any] struct {
	tag string
	fn  func(V) R
}

// On returns a Case handling the variant tagged tag with fn.
//
// A Matcher dispatches on the tag alone, so fn may receive any value
// reporting that tag, including a pointer to the variant when its methods
// have value receivers. Handlers that need the payload should type switch
// over both forms rather than assert a single concrete type.
func On[V Variant, R any](tag string, fn func(V) R) Case[V, R] {
	return Case[V, R]{tag: tag, fn: fn}
}

// Matcher dispatches a variant to the handler registered for its tag.
//
// The zero Matcher has no handlers and reports every variant as unmatched.
type Matcher[V Variant, R any] struct {
	sum      Sum
	handlers map[string]func(V) R
}

// NewMatcher builds an exhaustive Matcher over sum.
//
// Every declared variant must be handled exactly once by a non-nil handler and
// no case may name a tag outside sum. Otherwise NewMatcher returns an
// *IncompleteMatchError listing the offending tags.
func NewMatcher[V Variant, R any](sum Sum, cases ...Case[V, R]) (Matcher[V, R], error) {
	m, incomplete := buildMatcher(sum, cases)
	for _, tag := range sum.tags {
		if _, ok := m.handlers[tag]; !ok {
			incomplete.Missing = append(incomplete.Missing, tag)
		}
	}
	if incomplete.failed() {
		return Matcher[V, R]{}, incomplete
	}
	return m, nil
}

// NewPartialMatcher builds a Matcher that may leave variants unhandled.
//
// Unknown or duplicated tags are still rejected. Dispatching an unhandled
// variant fails with an *UnmatchedVariantError.
func NewPartialMatcher[V Variant, R any](sum Sum, cases ...Case[V, R]) (Matcher[V, R], error) {
	m, incomplete := buildMatcher(sum, cases)
	if incomplete.failed() {
		return Matcher[V, R]{}, incomplete
	}
	return m, nil
}

// MustMatcher is like NewMatcher but panics if the cases are incomplete.
func MustMatcher[V Variant, R any](sum Sum, cases ...Case[V, R]) Matcher[V, R] {
	m, err := NewMatcher(sum, cases...)
	if err != nil {
		panic(err)
	}
	return m
}

func buildMatcher[V Variant, R any](sum Sum, cases []Case[V, R]) (Matcher[V, R], *IncompleteMatchError) {
	m := Matcher[V, R]{
		sum:      sum,
		handlers: make(map[string]func(V) R, len(cases)),
	}
	incomplete := &IncompleteMatchError{Sum: sum.name}
	seen := make(map[string]bool, len(cases))
	for _, c := range cases {
		switch {
		case !sum.Has(c.tag):
			incomplete.Unknown = append(incomplete.Unknown, c.tag)
		case seen[c.tag]:
			incomplete.Duplicate = append(incomplete.Duplicate, c.tag)
		default:
			seen[c.tag] = true
			// a nil handler is left unregistered and so counts as missing
			if c.fn != nil {
				m.handlers[c.tag] = c.fn
			}
		}
	}
	return m, incomplete
}

func (e *IncompleteMatchError) failed() bool {
	return len(e.Missing)+len(e.Unknown)+len(e.Duplicate) > 0
}

// Match returns the result of the handler registered for v's tag.
//
// A nil v, or a v whose tag has no handler, fails with an
// *UnmatchedVariantError; Match never falls back to a default value.
func (m Matcher[V, R]) Match(v V) (R, error) {
	var zero R
	tag := tagOf(v)
	fn, ok := m.handlers[tag]
	if !ok {
		return zero, &UnmatchedVariantError{Sum: m.sum.name, Variant: tag}
	}
	return fn(v), nil
}

// Sum returns the sum type the Matcher was built for.
func (m Matcher[V, R]) Sum() Sum {
	return m.sum
}

// Dispatch calls fn with v. It is the building block of typed match functions
// that take one handler per variant: a nil fn fails with an
// *UnmatchedVariantError instead of being skipped.
func Dispatch[V Variant, R any](sum Sum, v V, fn func(V) R) (R, error) {
	if fn == nil {
		var zero R
		return zero, &UnmatchedVariantError{Sum: sum.name, Variant: tagOf(v)}
	}
	return fn(v), nil
}
