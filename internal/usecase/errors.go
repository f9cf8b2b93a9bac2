// Package usecase holds the business services. The taxonomy below is the
// whole error surface callers need to branch on; everything else is an
// internal failure. Handlers translate these with errors.Is: ErrNotFound
// to 404, ErrInvalidArgument to 400, ErrIllegalState and ErrConflict to
// 409. None of them are retried here; the caller must correct the request.
package usecase

import (
	"errors"

	"venue-booking/internal/data/repository"
)

var (
	// ErrNotFound means a referenced venue, order, message, news item or
	// user does not exist. Shares the store sentinel so wrapping at either
	// layer still matches.
	ErrNotFound = repository.ErrNotFound

	// ErrConflict means the requested slot overlaps an active booking (or
	// a unique field is already taken). Shares the store sentinel.
	ErrConflict = repository.ErrConflict

	// ErrInvalidArgument covers missing fields, malformed times,
	// non-positive hours and non-positive page indexes.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIllegalState means a lifecycle transition is not legal from the
	// record's current state.
	ErrIllegalState = errors.New("illegal state")
)
