package service

import (
	"context"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
)

type joinService struct {
	store    repository.Store
	emailSvc EmailService
}

func NewJoinService(store repository.Store, emailSvc EmailService) JoinService {
	return &joinService{store: store, emailSvc: emailSvc}
}

func (s *joinService) SubmitJoinRequest(ctx context.Context, userID, clubID int32, description string) (*domain.JoinApplication, error) {
	club, err := s.store.Clubs().GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}

	member, err := s.store.Clubs().IsMember(ctx, club.ID, userID)
	if err != nil {
		return nil, err
	}
	if member {
		return nil, domain.ErrAlreadyMember
	}

	pending, err := s.store.JoinApplications().ExistsReviewing(ctx, userID, club.ID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, fmt.Errorf("%w: a join request for this club is under review", domain.ErrDuplicateRequest)
	}

	app := &domain.JoinApplication{
		UserID:      userID,
		ClubID:      club.ID,
		Description: description,
		Status:      domain.ApplicationStatusReviewing,
	}
	if err := s.store.JoinApplications().Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// ResolveJoinRequest decides a reviewing join request. The actor must manage
// the club (chief or vice) and the request must actually belong to clubID.
// Acceptance adds the applicant to the member set in the same transaction as
// the status flip.
func (s *joinService) ResolveJoinRequest(ctx context.Context, actorID, clubID, requestID int32, decision domain.Decision) (*domain.JoinApplication, error) {
	club, err := s.store.Clubs().GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if !club.IsManager(actorID) {
		return nil, domain.ErrPermissionDenied
	}

	app, err := s.store.JoinApplications().GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if app.ClubID != club.ID {
		return nil, fmt.Errorf("%w: request %d does not belong to club %d", domain.ErrNotFound, requestID, clubID)
	}

	if decision == domain.DecisionReject {
		if err := s.store.JoinApplications().UpdateStatus(ctx, app.ID,
			domain.ApplicationStatusReviewing, domain.ApplicationStatusRejected); err != nil {
			return nil, err
		}
		app.Status = domain.ApplicationStatusRejected
		s.notifyApplicant(ctx, app, club.Name, false)
		return app, nil
	}

	err = s.store.RunInTx(ctx, func(tx repository.Store) error {
		if err := tx.JoinApplications().UpdateStatus(ctx, app.ID,
			domain.ApplicationStatusReviewing, domain.ApplicationStatusAccepted); err != nil {
			return err
		}
		return tx.Clubs().AddMember(ctx, &domain.Membership{ClubID: club.ID, UserID: app.UserID})
	})
	if err != nil {
		return nil, err
	}

	app.Status = domain.ApplicationStatusAccepted
	s.notifyApplicant(ctx, app, club.Name, true)
	return app, nil
}

func (s *joinService) notifyApplicant(ctx context.Context, app *domain.JoinApplication, clubName string, accepted bool) {
	applicant, err := s.store.Users().GetByID(ctx, app.UserID)
	if err != nil {
		logger.Warn("join decision mail skipped", "request_id", app.ID, "error", err)
		return
	}
	if err := s.emailSvc.SendJoinDecision(ctx, applicant.Email, applicant.Name, clubName, accepted); err != nil {
		logger.Warn("join decision mail failed", "request_id", app.ID, "error", err)
	}
}

func (s *joinService) ListMyJoinRequests(ctx context.Context, userID int32) ([]domain.JoinApplication, error) {
	return s.store.JoinApplications().ListByUser(ctx, userID)
}

func (s *joinService) ListClubJoinRequests(ctx context.Context, actorID, clubID int32, reviewing bool, page, pageSize int32) ([]domain.JoinApplication, int32, error) {
	club, err := s.store.Clubs().GetByID(ctx, clubID)
	if err != nil {
		return nil, 0, err
	}
	if !club.IsManager(actorID) {
		return nil, 0, domain.ErrPermissionDenied
	}
	return s.store.JoinApplications().ListByClub(ctx, club.ID, reviewing, page, pageSize)
}
