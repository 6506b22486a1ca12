package domain

import "time"

// AttendStatus is the per-participant state of an activity registration.
// reviewing resolves to accepted or rejected; accepted participants flip to
// attended during the activity's roll-call phase.
type AttendStatus string

const (
	AttendStatusReviewing AttendStatus = "REVIEWING"
	AttendStatusAccepted  AttendStatus = "ACCEPTED"
	AttendStatusRejected  AttendStatus = "REJECTED"
	AttendStatusAttended  AttendStatus = "ATTENDED"
)

func (s AttendStatus) StatusText() string {
	switch s {
	case AttendStatusReviewing:
		return "under review"
	case AttendStatusAccepted:
		return "accepted"
	case AttendStatusRejected:
		return "rejected"
	case AttendStatusAttended:
		return "checked in"
	}
	return "unknown"
}

// Attend pairs a user with an activity. At most one row exists per pair;
// it is created once and only status-mutated afterwards.
type Attend struct {
	ID         int32        `json:"id"`
	UserID     int32        `json:"user_id"`
	ActivityID int32        `json:"activity_id"`
	Status     AttendStatus `json:"status"`
	CreatedOn  time.Time    `json:"created_on"`
}
