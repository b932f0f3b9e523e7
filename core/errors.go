package core

import "errors"

// Sentinel errors for dispatch and coercion failures.
// Every error returned by reshape wraps one of these, so callers can
// classify failures with errors.Is regardless of the originating package.
var (
	// ErrUnsupportedType indicates no dispatch target matches the value.
	ErrUnsupportedType = errors.New("core: unsupported type")

	// ErrInvalidArgument indicates malformed parameters were supplied.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrConversionFailed indicates a value cannot be coerced to the target kind.
	ErrConversionFailed = errors.New("core: conversion failed")

	// ErrUnknownKind indicates a kind with no registered default value.
	ErrUnknownKind = errors.New("core: unknown kind")
)
