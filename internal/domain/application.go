package domain

import "time"

// ApplicationStatus is shared by club-creation and club-join applications.
// Both are one-shot reviews: reviewing resolves to accepted or rejected and
// the decision is final.
type ApplicationStatus string

const (
	ApplicationStatusReviewing ApplicationStatus = "REVIEWING"
	ApplicationStatusAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
)

func (s ApplicationStatus) StatusText() string {
	switch s {
	case ApplicationStatusReviewing:
		return "under review"
	case ApplicationStatusAccepted:
		return "accepted"
	case ApplicationStatusRejected:
		return "rejected"
	}
	return "unknown"
}

// CreateApplication is a request to found a new club. Acceptance creates the
// club with the applicant as chief and sole member.
type CreateApplication struct {
	ID          int32             `json:"id"`
	UserID      int32             `json:"user_id"`
	ClubName    string            `json:"club_name"`
	Description string            `json:"description"`
	Status      ApplicationStatus `json:"status"`
	CreatedOn   time.Time         `json:"created_on"`
}

// JoinApplication is a request to join an existing club, resolved by the
// club's chief or vice.
type JoinApplication struct {
	ID          int32             `json:"id"`
	UserID      int32             `json:"user_id"`
	ClubID      int32             `json:"club_id"`
	Description string            `json:"description"`
	Status      ApplicationStatus `json:"status"`
	CreatedOn   time.Time         `json:"created_on"`
}

// Decision is an accept/reject verdict on a reviewing record.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

func (d Decision) Valid() bool {
	return d == DecisionAccept || d == DecisionReject
}
