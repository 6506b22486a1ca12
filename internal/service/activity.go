package service

import (
	"context"
	"errors"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type activityService struct {
	store repository.Store
}

func NewActivityService(store repository.Store) ActivityService {
	return &activityService{store: store}
}

func (s *activityService) PublishActivity(ctx context.Context, actorID, clubID int32, name, description string) (*domain.Activity, error) {
	club, err := s.store.Clubs().GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club.ChiefID != actorID {
		return nil, domain.ErrPermissionDenied
	}

	act := &domain.Activity{
		ClubID:      club.ID,
		Name:        name,
		Description: description,
		Status:      domain.ActivityStatusReviewing,
	}
	if err := s.store.Activities().Create(ctx, act); err != nil {
		return nil, err
	}
	return act, nil
}

// ResolveActivity is the administrator's verdict on a published activity.
// Accepting is only legal from reviewing; rejecting is legal from reviewing
// or accepted, which gives administrators override power over activities they
// already let through.
func (s *activityService) ResolveActivity(ctx context.Context, actorID, activityID int32, decision domain.Decision) (*domain.Activity, error) {
	actor, err := s.store.Users().GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdministrator() {
		return nil, domain.ErrPermissionDenied
	}

	act, err := s.store.Activities().GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	if decision == domain.DecisionReject {
		err = s.store.Activities().UpdateStatus(ctx, act.ID, domain.ActivityStatusRejected,
			domain.ActivityStatusReviewing, domain.ActivityStatusAccepted)
		if err != nil {
			return nil, err
		}
		act.Status = domain.ActivityStatusRejected
		return act, nil
	}

	err = s.store.Activities().UpdateStatus(ctx, act.ID, domain.ActivityStatusAccepted,
		domain.ActivityStatusReviewing)
	if err != nil {
		return nil, err
	}
	act.Status = domain.ActivityStatusAccepted
	return act, nil
}

func (s *activityService) StartRollcall(ctx context.Context, actorID, activityID int32) (*domain.Activity, error) {
	act, club, err := s.loadActivityClub(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if club.ChiefID != actorID {
		return nil, domain.ErrPermissionDenied
	}

	err = s.store.Activities().UpdateStatus(ctx, act.ID, domain.ActivityStatusRollcall,
		domain.ActivityStatusAccepted)
	if err != nil {
		return nil, err
	}
	act.Status = domain.ActivityStatusRollcall
	return act, nil
}

// FinishActivity closes the activity and stores the chief's conclusion.
// Legal from accepted or rollcall; the predecessor system only allowed
// accepted, which left rollcall-phase activities with no way to end.
func (s *activityService) FinishActivity(ctx context.Context, actorID, activityID int32, conclusion string) (*domain.Activity, error) {
	act, club, err := s.loadActivityClub(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if club.ChiefID != actorID {
		return nil, domain.ErrPermissionDenied
	}

	err = s.store.Activities().Finish(ctx, act.ID, conclusion,
		domain.ActivityStatusAccepted, domain.ActivityStatusRollcall)
	if err != nil {
		return nil, err
	}
	act.Status = domain.ActivityStatusFinished
	act.Conclusion = conclusion
	return act, nil
}

func (s *activityService) GetActivity(ctx context.Context, callerID, activityID int32) (*domain.Activity, *domain.Attend, error) {
	act, err := s.store.Activities().GetByID(ctx, activityID)
	if err != nil {
		return nil, nil, err
	}

	att, err := s.store.Attends().GetByUserActivity(ctx, callerID, act.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return act, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return act, att, nil
}

// ListActivities returns the caller's view of activities by category:
// ongoing and all cover the caller's clubs, attended/reviewing/rejected
// follow the caller's attend records.
func (s *activityService) ListActivities(ctx context.Context, userID int32, category string, page, pageSize int32) ([]domain.Activity, int32, error) {
	switch category {
	case "ongoing":
		return s.store.Activities().ListForMember(ctx, userID, true, page, pageSize)
	case "all":
		return s.store.Activities().ListForMember(ctx, userID, false, page, pageSize)
	case "attended":
		return s.store.Activities().ListByAttendStatus(ctx, userID, domain.AttendStatusAccepted, page, pageSize)
	case "reviewing":
		return s.store.Activities().ListByAttendStatus(ctx, userID, domain.AttendStatusReviewing, page, pageSize)
	case "rejected":
		return s.store.Activities().ListByAttendStatus(ctx, userID, domain.AttendStatusRejected, page, pageSize)
	}
	return nil, 0, fmt.Errorf("%w: unknown activity category %q", domain.ErrNotFound, category)
}

func (s *activityService) loadActivityClub(ctx context.Context, activityID int32) (*domain.Activity, *domain.Club, error) {
	act, err := s.store.Activities().GetByID(ctx, activityID)
	if err != nil {
		return nil, nil, err
	}
	club, err := s.store.Clubs().GetByID(ctx, act.ClubID)
	if err != nil {
		return nil, nil, err
	}
	return act, club, nil
}
