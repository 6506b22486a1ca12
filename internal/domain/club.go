package domain

import "time"

type Club struct {
	ID          int32     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ChiefID     int32     `json:"chief_id"`
	ViceID      *int32    `json:"vice_id,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
	MemberCount int32     `json:"member_count,omitempty"`
}

// IsManager reports whether the user holds management authority over the
// club: the chief always, the vice when one is appointed.
func (c *Club) IsManager(userID int32) bool {
	if c.ChiefID == userID {
		return true
	}
	return c.ViceID != nil && *c.ViceID == userID
}

// Membership is one row of the club/user join table. The chief's row is
// created together with the club and never removed.
type Membership struct {
	ClubID   int32     `json:"club_id"`
	UserID   int32     `json:"user_id"`
	JoinedOn time.Time `json:"joined_on"`
}

// ClubStats is the activeness summary derived from a club's activities.
type ClubStats struct {
	ClubID             int32  `json:"club_id"`
	ClubName           string `json:"club_name"`
	MemberCount        int32  `json:"member_count"`
	OngoingActivities  int32  `json:"ongoing_activities"` // accepted or rollcall
	FinishedActivities int32  `json:"finished_activities"`
	TotalActivities    int32  `json:"total_activities"`
}
