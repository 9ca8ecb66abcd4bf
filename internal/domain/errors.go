package domain

import "fmt"

// InvalidInputError reports a malformed key, a bad field mapping, or a
// typed field outside its allowed format/range.
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	if e.Reason == "" {
		return "invalid input"
	}
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// Is enables errors.Is matching on InvalidInputError.
func (e InvalidInputError) Is(target error) bool {
	_, ok := target.(InvalidInputError)
	if ok {
		return true
	}
	_, ok = target.(*InvalidInputError)
	return ok
}

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// AlreadyExistsError reports a natural-key collision on create.
type AlreadyExistsError struct {
	Resource string
}

func (e AlreadyExistsError) Error() string {
	if e.Resource == "" {
		return "already exists"
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

// Is enables errors.Is matching on AlreadyExistsError.
func (e AlreadyExistsError) Is(target error) bool {
	_, ok := target.(AlreadyExistsError)
	if ok {
		return true
	}
	_, ok = target.(*AlreadyExistsError)
	return ok
}

// ReferenceNotFoundError reports that a key referenced by the record
// being created does not denote an existing record.
type ReferenceNotFoundError struct {
	Resource string
}

func (e ReferenceNotFoundError) Error() string {
	if e.Resource == "" {
		return "referenced resource not found"
	}
	return fmt.Sprintf("referenced %s not found", e.Resource)
}

// Is enables errors.Is matching on ReferenceNotFoundError.
func (e ReferenceNotFoundError) Is(target error) bool {
	_, ok := target.(ReferenceNotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*ReferenceNotFoundError)
	return ok
}

// ConnectionError reports that the backing store could not be reached.
// The core never retries it; callers decide retry policy.
type ConnectionError struct {
	Cause error
}

func (e ConnectionError) Error() string {
	if e.Cause == nil {
		return "datastore connection failed"
	}
	return fmt.Sprintf("datastore connection failed: %v", e.Cause)
}

func (e ConnectionError) Unwrap() error {
	return e.Cause
}

// Is enables errors.Is matching on ConnectionError.
func (e ConnectionError) Is(target error) bool {
	_, ok := target.(ConnectionError)
	if ok {
		return true
	}
	_, ok = target.(*ConnectionError)
	return ok
}

// Sentinel errors for errors.Is checks.
var (
	ErrInvalidInput      = InvalidInputError{}
	ErrNotFound          = NotFoundError{}
	ErrAlreadyExists     = AlreadyExistsError{}
	ErrReferenceNotFound = ReferenceNotFoundError{}
	ErrConnectionFailed  = ConnectionError{}
)
