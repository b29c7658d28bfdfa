package services

import (
	"errors"
	"fmt"
	"io/fs"
)

type ErrKind string

const (
	ErrNotFound     ErrKind = "not found"
	ErrAccessDenied ErrKind = "access denied"
	ErrExists       ErrKind = "already exists"
	ErrInvalid      ErrKind = "invalid"
)

// OpError is the caller-visible failure of a state-changing operation.
// Enumeration failures never produce one; they degrade silently.
type OpError struct {
	Op   string
	Path string
	Kind ErrKind
	Err  error
}

func (opErr *OpError) Error() string {
	return fmt.Sprintf("%s %s: %v", opErr.Op, opErr.Path, opErr.Err)
}

func (opErr *OpError) Unwrap() error {
	return opErr.Err
}

func NewOpError(op, path string, err error) *OpError {
	return &OpError{Op: op, Path: path, Kind: Classify(err), Err: err}
}

func Classify(err error) ErrKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrAccessDenied
	case errors.Is(err, fs.ErrExist):
		return ErrExists
	default:
		return ErrInvalid
	}
}
