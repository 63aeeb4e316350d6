// Copyright 2023-2026 The Spox Authors. SPDX-License-Identifier: Apache-2.0

// Package errs defines the kinds of errors reported while constructing and serializing graphs.
//
// Every error carries a Kind, and optionally the operator and the Var/Node it refers to.
// Test for a kind with errors.Is against the kind sentinels, e.g.:
//
//	if errors.Is(err, errs.ErrInference) { ... }
//
// or extract the details with errors.As:
//
//	var spoxErr *errs.Error
//	if errors.As(err, &spoxErr) { fmt.Println(spoxErr.Subject) }
package errs

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind of construction error.
type Kind int

const (
	// KindUnknown is used for errors not created by this package.
	KindUnknown Kind = iota

	// TypeError is a mismatch between a Var's type and what an operator accepts.
	TypeError

	// ScopeError is the use of a Var outside the builder session that created it, or of a frozen builder.
	ScopeError

	// InferenceError is an operator-specific invalidity of the inputs or attributes.
	InferenceError

	// InternalInferenceError is a non-monotone or non-deterministic inference result: a defect in an
	// inference rule. It is never recovered.
	InternalInferenceError

	// UnsupportedOpsetError is a request for an operator or version no binding qualifies for.
	UnsupportedOpsetError

	// GraphIntegrityError is a structural defect found while building or serializing a graph.
	GraphIntegrityError
)

var kindNames = [...]string{
	KindUnknown:            "UnknownError",
	TypeError:              "TypeError",
	ScopeError:             "ScopeError",
	InferenceError:         "InferenceError",
	InternalInferenceError: "InternalInferenceError",
	UnsupportedOpsetError:  "UnsupportedOpsetError",
	GraphIntegrityError:    "GraphIntegrityError",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Sentinels to be used with errors.Is.
var (
	ErrType              = &Error{Kind: TypeError}
	ErrScope             = &Error{Kind: ScopeError}
	ErrInference         = &Error{Kind: InferenceError}
	ErrInternalInference = &Error{Kind: InternalInferenceError}
	ErrUnsupportedOpset  = &Error{Kind: UnsupportedOpsetError}
	ErrGraphIntegrity    = &Error{Kind: GraphIntegrityError}
)

// Error is a construction error of a given Kind.
type Error struct {
	Kind Kind

	// Op is the operator (e.g. "Add") involved, if any.
	Op string

	// Subject identifies the Var or Node involved, if any.
	Subject string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	if e.Op != "" {
		_, _ = fmt.Fprintf(&sb, " in %s", e.Op)
	}
	if e.Subject != "" {
		_, _ = fmt.Fprintf(&sb, " at %s", e.Subject)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so the kind sentinels can be used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Format implements fmt.Formatter: "%+v" includes the stack trace of the cause.
func (e *Error) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') && e.Err != nil {
		_, _ = fmt.Fprintf(s, "%s: %+v", e.prefix(), e.Err)
		return
	}
	_, _ = fmt.Fprint(s, e.Error())
}

func (e *Error) prefix() string {
	clone := *e
	clone.Err = nil
	return clone.Error()
}

// Newf creates an error of the given kind, with a stack trace.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: errors.Errorf(format, args...)}
}

// Wrapf wraps err as an error of the given kind, with a message. It returns nil if err is nil.
// If err already has a kind, the new kind takes precedence.
func Wrapf(kind Kind, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: errors.WithMessagef(errors.WithStack(err), format, args...)}
}

// Wrap is like Wrapf, without the extra message.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: errors.WithStack(err)}
}

// At returns err annotated with the operator and subject it refers to. Empty values don't
// overwrite information already present. Errors without a kind are wrapped with KindUnknown.
func At(err error, op, subject string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if !errors.As(err, &e) {
		return &Error{Kind: KindUnknown, Op: op, Subject: subject, Err: err}
	}
	clone := *e
	if clone.Op == "" {
		clone.Op = op
	}
	if clone.Subject == "" {
		clone.Subject = subject
	}
	return &clone
}

// KindOf returns the Kind of the error, or KindUnknown if it was not created by this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
