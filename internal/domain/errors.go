package domain

import "errors"

var (
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidRequest indicates invalid request
	ErrInvalidRequest = errors.New("invalid request")
	// ErrBusy indicates a submit was attempted while one is in flight
	ErrBusy = errors.New("a request is already in flight")
	// ErrSchemaMismatch indicates a dataset row diverges from the declared schema
	ErrSchemaMismatch = errors.New("row does not match dataset schema")
)
