// Package validation validates user input along a railway: every check
// takes the input and either passes it on or derails with a
// ValidationError, and the first failure short-circuits the rest.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/KasperOmsK/adtfn"
)

// Sum declares the ValidationError variants.
var Sum = adtfn.NewSum("ValidationError", "NameMustNotBeBlank", "EmailMustNotBeBlank", "EmailNotValid")

// ValidationError is one of the ways an Input can be rejected. Every variant
// is also an error.
type ValidationError interface {
	adtfn.Variant
	error
	isValidationError()
}

type NameMustNotBeBlank struct{}

type EmailMustNotBeBlank struct{}

type EmailNotValid struct {
	Email string
}

func (NameMustNotBeBlank) Variant() string  { return "NameMustNotBeBlank" }
func (EmailMustNotBeBlank) Variant() string { return "EmailMustNotBeBlank" }
func (EmailNotValid) Variant() string       { return "EmailNotValid" }

func (NameMustNotBeBlank) isValidationError()  {}
func (EmailMustNotBeBlank) isValidationError() {}
func (EmailNotValid) isValidationError()       {}

func (e NameMustNotBeBlank) Error() string  { return mustMessage(e) }
func (e EmailMustNotBeBlank) Error() string { return mustMessage(e) }
func (e EmailNotValid) Error() string       { return mustMessage(e) }

var messages = adtfn.MustMatcher(Sum,
	adtfn.On("NameMustNotBeBlank", func(ValidationError) string {
		return "Name must not be blank"
	}),
	adtfn.On("EmailMustNotBeBlank", func(ValidationError) string {
		return "Email must not be blank"
	}),
	adtfn.On("EmailNotValid", func(e ValidationError) string {
		var email string
		switch v := e.(type) {
		case EmailNotValid:
			email = v.Email
		case *EmailNotValid:
			email = v.Email
		}
		return fmt.Sprintf("Email `%s` is not valid.", email)
	}),
)

// Message returns the human readable text of err.
func Message(err ValidationError) (string, error) {
	return messages.Match(err)
}

func mustMessage(e ValidationError) string {
	m, err := Message(e)
	if err != nil {
		panic(err)
	}
	return m
}

// Input is the raw form submitted by a user.
type Input struct {
	Name  string
	Email string
}

// NameNotBlank passes in on when it has a name.
func NameNotBlank(in Input) adtfn.Result[Input] {
	if strings.TrimSpace(in.Name) == "" {
		return adtfn.Err[Input](NameMustNotBeBlank{})
	}
	return adtfn.Ok(in)
}

// EmailNotBlank passes in on when it has an email address.
func EmailNotBlank(in Input) adtfn.Result[Input] {
	if strings.TrimSpace(in.Email) == "" {
		return adtfn.Err[Input](EmailMustNotBeBlank{})
	}
	return adtfn.Ok(in)
}

// emailPattern is a simplified RFC 5322 address: a dot-atom local part and
// a hostname.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

const maxEmailLength = 254

// EmailValid passes in on when its email looks like an address.
func EmailValid(in Input) adtfn.Result[Input] {
	email := strings.TrimSpace(in.Email)
	if len(email) > maxEmailLength || !emailPattern.MatchString(email) {
		return adtfn.Err[Input](EmailNotValid{Email: in.Email})
	}
	return adtfn.Ok(in)
}

// Validate runs every check in order and stops at the first failure.
func Validate(in Input) adtfn.Result[Input] {
	return adtfn.Chain(in, NameNotBlank, EmailNotBlank, EmailValid)
}

// Describe renders the outcome of a validation.
func Describe(r adtfn.Result[Input]) string {
	return adtfn.MatchResult(r,
		func(in Input) string {
			return fmt.Sprintf("The result was a success...  `%s <%s>`", in.Name, in.Email)
		},
		func(err error) string {
			return fmt.Sprintf("The result was a failure... `%v`", err)
		},
	)
}
