package repository

import (
	"context"

	"clubhub-backend/internal/domain"
)

// Store bundles the repositories with transactional execution. RunInTx hands
// fn a Store whose repositories share one transaction; returning an error
// rolls every write back.
type Store interface {
	Users() UserRepository
	Clubs() ClubRepository
	CreateApplications() CreateApplicationRepository
	JoinApplications() JoinApplicationRepository
	Activities() ActivityRepository
	Attends() AttendRepository

	RunInTx(ctx context.Context, fn func(tx Store) error) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	GetRoleByName(ctx context.Context, name string) (*domain.Role, error)
	GetDefaultRole(ctx context.Context) (*domain.Role, error)
}

type ClubRepository interface {
	Create(ctx context.Context, club *domain.Club) error
	GetByID(ctx context.Context, id int32) (*domain.Club, error)
	GetByName(ctx context.Context, name string) (*domain.Club, error)
	Update(ctx context.Context, club *domain.Club) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Club, int32, error)
	ListByMember(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Club, int32, error)

	AddMember(ctx context.Context, m *domain.Membership) error
	IsMember(ctx context.Context, clubID, userID int32) (bool, error)
	ListMembers(ctx context.Context, clubID int32) ([]domain.User, error)

	Stats(ctx context.Context) ([]domain.ClubStats, error)
	SaveStatsSnapshot(ctx context.Context, takenOn string, stats []domain.ClubStats) error
}

type CreateApplicationRepository interface {
	Create(ctx context.Context, app *domain.CreateApplication) error
	GetByID(ctx context.Context, id int32) (*domain.CreateApplication, error)
	ExistsReviewingByName(ctx context.Context, clubName string) (bool, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.CreateApplication, error)
	ListByReviewState(ctx context.Context, reviewing bool, page, pageSize int32) ([]domain.CreateApplication, int32, error)

	// UpdateStatus transitions id from "from" to "to" in one conditional
	// write. Zero rows matched means the record was already decided and the
	// repo returns domain.ErrInvalidState.
	UpdateStatus(ctx context.Context, id int32, from, to domain.ApplicationStatus) error
}

type JoinApplicationRepository interface {
	Create(ctx context.Context, app *domain.JoinApplication) error
	GetByID(ctx context.Context, id int32) (*domain.JoinApplication, error)
	ExistsReviewing(ctx context.Context, userID, clubID int32) (bool, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.JoinApplication, error)
	ListByClub(ctx context.Context, clubID int32, reviewing bool, page, pageSize int32) ([]domain.JoinApplication, int32, error)
	UpdateStatus(ctx context.Context, id int32, from, to domain.ApplicationStatus) error
}

type ActivityRepository interface {
	Create(ctx context.Context, act *domain.Activity) error
	GetByID(ctx context.Context, id int32) (*domain.Activity, error)
	ListByClub(ctx context.Context, clubID int32, page, pageSize int32) ([]domain.Activity, int32, error)
	// ListForMember returns activities of clubs the user belongs to,
	// optionally restricted to ongoing (accepted or rollcall) ones.
	ListForMember(ctx context.Context, userID int32, ongoingOnly bool, page, pageSize int32) ([]domain.Activity, int32, error)
	// ListByAttendStatus returns activities where the user's attend record is
	// in the given status.
	ListByAttendStatus(ctx context.Context, userID int32, status domain.AttendStatus, page, pageSize int32) ([]domain.Activity, int32, error)

	// UpdateStatus transitions id to "to" when the current status is one of
	// "from"; domain.ErrInvalidState when no row matched.
	UpdateStatus(ctx context.Context, id int32, to domain.ActivityStatus, from ...domain.ActivityStatus) error
	// Finish is UpdateStatus to FINISHED plus the conclusion text.
	Finish(ctx context.Context, id int32, conclusion string, from ...domain.ActivityStatus) error
}

type AttendRepository interface {
	Create(ctx context.Context, att *domain.Attend) error
	GetByID(ctx context.Context, id int32) (*domain.Attend, error)
	GetByUserActivity(ctx context.Context, userID, activityID int32) (*domain.Attend, error)
	ListByActivity(ctx context.Context, activityID int32) ([]domain.Attend, error)
	UpdateStatus(ctx context.Context, id int32, from, to domain.AttendStatus) error

	// MarkRollcall overwrites the roll-call outcome for every accepted or
	// attended record of the activity: attended when the id is listed,
	// accepted otherwise. Idempotent.
	MarkRollcall(ctx context.Context, activityID int32, attendedIDs []int32) error
}
