package domain

import "errors"

// Workflow failure taxonomy. Services return these (possibly wrapped with
// %w); the HTTP layer maps them to response codes with errors.Is.
var (
	// ErrPermissionDenied: the caller lacks the role or club relationship the
	// transition requires.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidState: the requested transition is not legal from the record's
	// current status. Also returned when a concurrent resolution won the race.
	ErrInvalidState = errors.New("transition not legal from current status")

	// ErrDuplicateRequest: a reviewing application (or any attend record) for
	// the same target already exists.
	ErrDuplicateRequest = errors.New("duplicate request")

	// ErrDuplicateName: the club name is held by an existing club or a
	// still-reviewing creation request.
	ErrDuplicateName = errors.New("club name already taken")

	ErrAlreadyMember    = errors.New("already a member of this club")
	ErrNotRegistered    = errors.New("no attendance record for this activity")
	ErrAlreadyCheckedIn = errors.New("already checked in")
	ErrNotFound         = errors.New("not found")

	// ErrStorageUnavailable wraps gateway connection failures; the caller
	// treats it as fatal for the request.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
