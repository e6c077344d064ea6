package domain

import "time"

// Relationship is the viewer's cached view of one subject user.
// Following and Requested are mutually exclusive: a viewer either already
// follows the subject, has a pending request outstanding, or neither.
type Relationship struct {
	SubjectID UserID
	Following bool
	Requested bool
}

// Consistent reports whether the record honors the mutual-exclusion
// invariant.
func (r Relationship) Consistent() bool {
	return !(r.Following && r.Requested)
}

// Pending reports whether the record is waiting on the subject's decision
// and therefore needs periodic reconciliation against the server.
func (r Relationship) Pending() bool {
	return r.Requested
}

// FollowRequest is an inbound request from another user asking to follow
// the signed-in (private) account.
type FollowRequest struct {
	RequesterID UserID
	Username    string
	FirstName   string
	LastName    string
	CreatedAt   time.Time
}
