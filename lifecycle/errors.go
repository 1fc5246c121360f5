package lifecycle

import (
	"errors"
	"strings"
)

// Kind classifies an engine error so transport layers can pick a status
// code without matching on messages.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthorization
	KindConflict
	KindNotFound
)

type Error struct {
	Kind Kind
	Code string
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Sentinel errors, compared with errors.Is. Every engine operation returns
// one of these (or a wrapped storage error) and rolls back fully.
var (
	ErrMemberNotFound     = &Error{Kind: KindNotFound, Code: "MEMBER_NOT_FOUND", msg: "member not found"}
	ErrProjectNotFound    = &Error{Kind: KindNotFound, Code: "PROJECT_NOT_FOUND", msg: "project not found"}
	ErrMembershipNotFound = &Error{Kind: KindNotFound, Code: "MEMBERSHIP_NOT_FOUND", msg: "membership not found"}

	ErrMemberNotAccepted = &Error{Kind: KindAuthorization, Code: "MEMBER_NOT_ACCEPTED", msg: "member registration is not accepted"}
	ErrNotCoordinator    = &Error{Kind: KindAuthorization, Code: "NOT_COORDINATOR", msg: "actor is not an approved coordinator of the project"}
	ErrSelfRemoval       = &Error{Kind: KindAuthorization, Code: "SELF_REMOVAL", msg: "coordinators cannot remove their own membership"}

	ErrActiveMembership   = &Error{Kind: KindConflict, Code: "ACTIVE_MEMBERSHIP", msg: "member already has an active membership in this project"}
	ErrAlreadyProcessed   = &Error{Kind: KindConflict, Code: "ALREADY_PROCESSED", msg: "membership was already processed"}
	ErrTransferInProgress = &Error{Kind: KindConflict, Code: "TRANSFER_IN_PROGRESS", msg: "member already has a transfer in progress"}
	ErrSourceNotActive    = &Error{Kind: KindConflict, Code: "SOURCE_NOT_ACTIVE", msg: "source membership is not approved"}

	ErrInvalidLinkType  = &Error{Kind: KindValidation, Code: "INVALID_LINK_TYPE", msg: "invalid link type"}
	ErrInvalidRole      = &Error{Kind: KindValidation, Code: "INVALID_ROLE", msg: "invalid role"}
	ErrInvalidHours     = &Error{Kind: KindValidation, Code: "INVALID_HOURS", msg: "weekly hours out of range"}
	ErrInvalidStartDate = &Error{Kind: KindValidation, Code: "INVALID_START_DATE", msg: "start date is required"}
	ErrInvalidEndDate   = &Error{Kind: KindValidation, Code: "INVALID_END_DATE", msg: "end date precedes start date"}
)

// KindOf returns the Kind of err, or 0 for errors the engine does not own.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// isUniqueViolation detects duplicate-key errors from the partial unique
// indexes backing the one-active-membership and one-transfer-in-flight
// rules, so raced writes that slip past the EXISTS checks map to the same
// conflict sentinels. Matched on message: the postgres and sqlite drivers
// surface different error types.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key value") || strings.Contains(s, "UNIQUE constraint failed")
}
