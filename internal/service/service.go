package service

import (
	"context"

	"clubhub-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, email, username, password, name, location string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, string, error) // access, refresh
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
}

type ClubService interface {
	ListClubs(ctx context.Context, page, pageSize int32) ([]domain.Club, int32, error)
	ListMyClubs(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Club, int32, error)
	GetClub(ctx context.Context, clubID int32) (*domain.Club, []domain.User, error)
	UpdateClub(ctx context.Context, actorID, clubID int32, name, description string) (*domain.Club, error)
	AppointVice(ctx context.Context, actorID, clubID, userID int32) (*domain.Club, error)
	ClubStats(ctx context.Context) ([]domain.ClubStats, error)
}

// CreationService runs the club-creation workflow: a creation request is
// reviewed by an administrator and, when accepted, founds the club with the
// applicant as chief.
type CreationService interface {
	SubmitCreateRequest(ctx context.Context, userID int32, clubName, description string) (*domain.CreateApplication, error)
	ResolveCreateRequest(ctx context.Context, actorID, requestID int32, decision domain.Decision) (*domain.CreateApplication, error)
	ListMyCreateRequests(ctx context.Context, userID int32) ([]domain.CreateApplication, error)
	ListCreateRequests(ctx context.Context, actorID int32, reviewing bool, page, pageSize int32) ([]domain.CreateApplication, int32, error)
}

// JoinService runs the club-join workflow, resolved by the club's chief or
// vice.
type JoinService interface {
	SubmitJoinRequest(ctx context.Context, userID, clubID int32, description string) (*domain.JoinApplication, error)
	ResolveJoinRequest(ctx context.Context, actorID, clubID, requestID int32, decision domain.Decision) (*domain.JoinApplication, error)
	ListMyJoinRequests(ctx context.Context, userID int32) ([]domain.JoinApplication, error)
	ListClubJoinRequests(ctx context.Context, actorID, clubID int32, reviewing bool, page, pageSize int32) ([]domain.JoinApplication, int32, error)
}

// ActivityService runs the activity lifecycle: published by the chief,
// reviewed by an administrator, then roll-called and finished by the chief.
type ActivityService interface {
	PublishActivity(ctx context.Context, actorID, clubID int32, name, description string) (*domain.Activity, error)
	ResolveActivity(ctx context.Context, actorID, activityID int32, decision domain.Decision) (*domain.Activity, error)
	StartRollcall(ctx context.Context, actorID, activityID int32) (*domain.Activity, error)
	FinishActivity(ctx context.Context, actorID, activityID int32, conclusion string) (*domain.Activity, error)
	GetActivity(ctx context.Context, callerID, activityID int32) (*domain.Activity, *domain.Attend, error)
	ListActivities(ctx context.Context, userID int32, category string, page, pageSize int32) ([]domain.Activity, int32, error)
}

// AttendanceService runs the per-participant registration workflow including
// self-service check-in and the chief's bulk roll-call.
type AttendanceService interface {
	ApplyToAttend(ctx context.Context, userID, activityID int32) (*domain.Attend, error)
	ResolveAttendRequest(ctx context.Context, actorID, attendID int32, decision domain.Decision) (*domain.Attend, error)
	CheckIn(ctx context.Context, userID, activityID int32) (*domain.Attend, error)
	BulkRollcall(ctx context.Context, actorID, activityID int32, attendedIDs []int32) ([]domain.Attend, error)
	ListParticipants(ctx context.Context, actorID, activityID int32) ([]domain.Attend, error)
}

// EmailService delivers decision-outcome mail. Senders treat failures as
// best-effort: a lost email never fails a transition.
type EmailService interface {
	SendJoinDecision(ctx context.Context, email, name, clubName string, accepted bool) error
	SendCreateDecision(ctx context.Context, email, name, clubName string, accepted bool) error
}
