package common

import "errors"

// Core error taxonomy. Handlers map these onto HTTP status codes; services
// return them wrapped so callers can use errors.Is.
var (
	ErrNotFound                = errors.New("not found")
	ErrUnauthenticated         = errors.New("unauthenticated")
	ErrForbidden               = errors.New("forbidden")
	ErrMentorUnavailable       = errors.New("mentor is not accepting new requests")
	ErrDuplicateActiveRequest  = errors.New("an active request already exists for this pair")
	ErrInvalidTransition       = errors.New("request state does not allow this transition")
	ErrConversationNotApproved = errors.New("no approved mentorship backs this conversation")
	ErrEmptyBody               = errors.New("message body is empty")
)
