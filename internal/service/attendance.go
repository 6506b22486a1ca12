package service

import (
	"context"
	"errors"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type attendanceService struct {
	store repository.Store
}

func NewAttendanceService(store repository.Store) AttendanceService {
	return &attendanceService{store: store}
}

// ApplyToAttend registers the user for an activity. A second application for
// the same activity fails with the existing record's status in the message,
// whatever that status is: the pair gets one record, ever.
func (s *attendanceService) ApplyToAttend(ctx context.Context, userID, activityID int32) (*domain.Attend, error) {
	act, err := s.store.Activities().GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.Attends().GetByUserActivity(ctx, userID, act.ID)
	if err == nil {
		return nil, fmt.Errorf("%w: already applied, status: %s", domain.ErrDuplicateRequest, existing.Status.StatusText())
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	att := &domain.Attend{
		UserID:     userID,
		ActivityID: act.ID,
		Status:     domain.AttendStatusReviewing,
	}
	if err := s.store.Attends().Create(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

func (s *attendanceService) ResolveAttendRequest(ctx context.Context, actorID, attendID int32, decision domain.Decision) (*domain.Attend, error) {
	att, err := s.store.Attends().GetByID(ctx, attendID)
	if err != nil {
		return nil, err
	}

	club, err := s.activityClub(ctx, att.ActivityID)
	if err != nil {
		return nil, err
	}
	if club.ChiefID != actorID {
		return nil, domain.ErrPermissionDenied
	}

	to := domain.AttendStatusAccepted
	if decision == domain.DecisionReject {
		to = domain.AttendStatusRejected
	}
	if err := s.store.Attends().UpdateStatus(ctx, att.ID, domain.AttendStatusReviewing, to); err != nil {
		return nil, err
	}
	att.Status = to
	return att, nil
}

// CheckIn is the attendee's self-service roll-call. The activity must be in
// its rollcall phase and only accepted registrations may check in.
func (s *attendanceService) CheckIn(ctx context.Context, userID, activityID int32) (*domain.Attend, error) {
	act, err := s.store.Activities().GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if act.Status != domain.ActivityStatusRollcall {
		return nil, fmt.Errorf("%w: activity is not in roll call", domain.ErrInvalidState)
	}

	att, err := s.store.Attends().GetByUserActivity(ctx, userID, act.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotRegistered
	}
	if err != nil {
		return nil, err
	}

	switch att.Status {
	case domain.AttendStatusAttended:
		return nil, domain.ErrAlreadyCheckedIn
	case domain.AttendStatusAccepted:
		// fall through to the transition
	default:
		return nil, fmt.Errorf("%w: registration is %s", domain.ErrInvalidState, att.Status.StatusText())
	}

	if err := s.store.Attends().UpdateStatus(ctx, att.ID, domain.AttendStatusAccepted, domain.AttendStatusAttended); err != nil {
		return nil, err
	}
	att.Status = domain.AttendStatusAttended
	return att, nil
}

// BulkRollcall is the chief's overwrite of the whole roll-call outcome:
// listed records end up attended, every other accepted or attended record
// ends up accepted. Submitting the same set twice changes nothing.
func (s *attendanceService) BulkRollcall(ctx context.Context, actorID, activityID int32, attendedIDs []int32) ([]domain.Attend, error) {
	act, err := s.store.Activities().GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	club, err := s.store.Clubs().GetByID(ctx, act.ClubID)
	if err != nil {
		return nil, err
	}
	if club.ChiefID != actorID {
		return nil, domain.ErrPermissionDenied
	}

	err = s.store.RunInTx(ctx, func(tx repository.Store) error {
		return tx.Attends().MarkRollcall(ctx, act.ID, attendedIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.store.Attends().ListByActivity(ctx, act.ID)
}

func (s *attendanceService) ListParticipants(ctx context.Context, actorID, activityID int32) ([]domain.Attend, error) {
	club, err := s.activityClub(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if !club.IsManager(actorID) {
		return nil, domain.ErrPermissionDenied
	}
	return s.store.Attends().ListByActivity(ctx, activityID)
}

func (s *attendanceService) activityClub(ctx context.Context, activityID int32) (*domain.Club, error) {
	act, err := s.store.Activities().GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	return s.store.Clubs().GetByID(ctx, act.ClubID)
}
