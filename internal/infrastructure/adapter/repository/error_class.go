package repository

import (
	"context"
	"errors"
	"strings"
)

// ErrorClass names the kind of driver failure behind a store error
type ErrorClass string

const (
	ClassCanceled   ErrorClass = "canceled"
	ClassDuplicate  ErrorClass = "duplicate_key"
	ClassLock       ErrorClass = "lock"
	ClassTransient  ErrorClass = "transient"
	ClassConnection ErrorClass = "connection"
	ClassConstraint ErrorClass = "constraint"
)

// errorPatterns is matched in order against the lower-cased message; first hit wins.
// Postgres, SQLite and MySQL wordings are covered.
var errorPatterns = []struct {
	class     ErrorClass
	fragments []string
}{
	{ClassCanceled, []string{"context deadline exceeded", "context canceled"}},
	{ClassDuplicate, []string{"duplicate key", "unique constraint", "duplicate entry"}},
	{ClassLock, []string{"deadlock", "lock wait timeout", "could not serialize access", "serialization failure"}},
	{ClassTransient, []string{"connection reset", "connection refused", "timeout", "eof", "server closed", "broken pipe"}},
	{ClassConnection, []string{"connection", "dial", "network"}},
	{ClassConstraint, []string{"constraint", "violates", "foreign key", "not null"}},
}

// classifyError returns the class of err, or "" when nothing matches
func classifyError(err error) ErrorClass {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ClassCanceled
	}

	msg := strings.ToLower(err.Error())
	for _, p := range errorPatterns {
		if containsAny(msg, p.fragments) {
			return p.class
		}
	}
	return ""
}

func isDuplicateKey(err error) bool {
	return classifyError(err) == ClassDuplicate
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}
