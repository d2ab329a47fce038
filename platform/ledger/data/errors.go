/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package data

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InvalidArgumentError is a request rejected before it is sent.
// It carries codes.InvalidArgument, so callers classify it like the server's own rejections.
type InvalidArgumentError struct {
	msg string
}

func (e *InvalidArgumentError) Error() string {
	return e.msg
}

func (e *InvalidArgumentError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.msg)
}

var (
	// ErrInvalidRange is returned when the end offset precedes the begin offset
	ErrInvalidRange = &InvalidArgumentError{msg: "end offset precedes begin offset"}
	// ErrConflictingFilter is returned when a request carries both a filter and a format
	ErrConflictingFilter = &InvalidArgumentError{msg: "request carries both a transaction filter and an update format"}
	// ErrMissingFilter is returned when a request selects nothing
	ErrMissingFilter = &InvalidArgumentError{msg: "request carries neither a transaction filter nor an update format"}
	// ErrMalformedIdentifier is returned when an identifier is not of the form package:module:entity
	ErrMalformedIdentifier = &InvalidArgumentError{msg: "identifier is not of the form package:module:entity"}
	// ErrEmptyUpdateID is returned by lookups by id given an empty id
	ErrEmptyUpdateID = &InvalidArgumentError{msg: "update id is empty"}
	// ErrEmptyPackageID is returned by package lookups given an empty id
	ErrEmptyPackageID = &InvalidArgumentError{msg: "package id is empty"}
	// ErrEmptyCommandID is returned when a submission carries no command id
	ErrEmptyCommandID = &InvalidArgumentError{msg: "command id is empty"}
	// ErrNoCommands is returned when a submission carries no commands
	ErrNoCommands = &InvalidArgumentError{msg: "submission carries no commands"}
	// ErrMissingActAs is returned when a submission names no acting party
	ErrMissingActAs = &InvalidArgumentError{msg: "submission names no acting party"}
	// ErrConflictingDeduplication is returned when a submission sets both a deduplication duration and offset
	ErrConflictingDeduplication = &InvalidArgumentError{msg: "submission sets both a deduplication duration and a deduplication offset"}
)
