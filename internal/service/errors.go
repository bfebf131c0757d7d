package service

import "errors"

var (
	// Instance lifecycle errors
	ErrInstanceExists     = errors.New("service instance already exists")
	ErrInstanceNotFound   = errors.New("service instance does not exist")
	ErrUpdateNotSupported = errors.New("service instance update not supported")

	// Binding lifecycle errors
	ErrBindingExists = errors.New("service binding already exists")
)
