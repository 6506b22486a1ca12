package domain

import "time"

// ActivityStatus forms the lifecycle
//
//	reviewing -> accepted -> rollcall -> finished
//
// with rejected reachable from reviewing and, as an admin override, from
// accepted. rejected and finished are terminal.
type ActivityStatus string

const (
	ActivityStatusReviewing ActivityStatus = "REVIEWING"
	ActivityStatusAccepted  ActivityStatus = "ACCEPTED"
	ActivityStatusRejected  ActivityStatus = "REJECTED"
	ActivityStatusRollcall  ActivityStatus = "ROLLCALL"
	ActivityStatusFinished  ActivityStatus = "FINISHED"
)

func (s ActivityStatus) StatusText() string {
	switch s {
	case ActivityStatusReviewing:
		return "under review"
	case ActivityStatusAccepted:
		return "accepted"
	case ActivityStatusRejected:
		return "rejected"
	case ActivityStatusRollcall:
		return "roll call in progress"
	case ActivityStatusFinished:
		return "finished"
	}
	return "unknown"
}

// Ongoing reports whether the activity is live for its club's members.
func (s ActivityStatus) Ongoing() bool {
	return s == ActivityStatusAccepted || s == ActivityStatusRollcall
}

type Activity struct {
	ID          int32          `json:"id"`
	ClubID      int32          `json:"club_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Conclusion  string         `json:"conclusion,omitempty"`
	Status      ActivityStatus `json:"status"`
	CreatedOn   time.Time      `json:"created_on"`
}
