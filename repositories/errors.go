package repositories

import "errors"

var (
	// ErrSelfFollow is returned when a user tries to follow themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")

	// ErrAlreadyFollowing is returned when a follow relationship already
	// exists for the same ordered (subject, object) pair.
	ErrAlreadyFollowing = errors.New("already following this user")

	// ErrRelationshipNotFound is returned when no relationship row exists
	// in either orientation between two users.
	ErrRelationshipNotFound = errors.New("follow relationship not found")
)
