package service

import (
	"context"
	"errors"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
)

type creationService struct {
	store    repository.Store
	emailSvc EmailService
}

func NewCreationService(store repository.Store, emailSvc EmailService) CreationService {
	return &creationService{store: store, emailSvc: emailSvc}
}

// SubmitCreateRequest files a reviewing creation request. A name is taken if
// any club holds it or another creation request for it is still under review;
// resolved requests release the name.
func (s *creationService) SubmitCreateRequest(ctx context.Context, userID int32, clubName, description string) (*domain.CreateApplication, error) {
	if _, err := s.store.Clubs().GetByName(ctx, clubName); err == nil {
		return nil, fmt.Errorf("%w: club %q exists", domain.ErrDuplicateName, clubName)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	taken, err := s.store.CreateApplications().ExistsReviewingByName(ctx, clubName)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: %q is pending another request", domain.ErrDuplicateName, clubName)
	}

	app := &domain.CreateApplication{
		UserID:      userID,
		ClubName:    clubName,
		Description: description,
		Status:      domain.ApplicationStatusReviewing,
	}
	if err := s.store.CreateApplications().Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// ResolveCreateRequest decides a reviewing request. Only administrators may
// resolve; acceptance founds the club with the applicant as chief and sole
// member, all inside one transaction. A request already decided (including by
// a concurrent administrator) yields ErrInvalidState.
func (s *creationService) ResolveCreateRequest(ctx context.Context, actorID, requestID int32, decision domain.Decision) (*domain.CreateApplication, error) {
	actor, err := s.store.Users().GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdministrator() {
		return nil, domain.ErrPermissionDenied
	}

	app, err := s.store.CreateApplications().GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if decision == domain.DecisionReject {
		if err := s.store.CreateApplications().UpdateStatus(ctx, app.ID,
			domain.ApplicationStatusReviewing, domain.ApplicationStatusRejected); err != nil {
			return nil, err
		}
		app.Status = domain.ApplicationStatusRejected
		s.notifyApplicant(ctx, app, false)
		return app, nil
	}

	err = s.store.RunInTx(ctx, func(tx repository.Store) error {
		if err := tx.CreateApplications().UpdateStatus(ctx, app.ID,
			domain.ApplicationStatusReviewing, domain.ApplicationStatusAccepted); err != nil {
			return err
		}

		// The name may have been claimed since submission.
		if _, err := tx.Clubs().GetByName(ctx, app.ClubName); err == nil {
			return fmt.Errorf("%w: club %q exists", domain.ErrDuplicateName, app.ClubName)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		club := &domain.Club{
			Name:        app.ClubName,
			Description: app.Description,
			ChiefID:     app.UserID,
		}
		if err := tx.Clubs().Create(ctx, club); err != nil {
			return err
		}
		return tx.Clubs().AddMember(ctx, &domain.Membership{ClubID: club.ID, UserID: app.UserID})
	})
	if err != nil {
		return nil, err
	}

	app.Status = domain.ApplicationStatusAccepted
	s.notifyApplicant(ctx, app, true)
	return app, nil
}

func (s *creationService) notifyApplicant(ctx context.Context, app *domain.CreateApplication, accepted bool) {
	applicant, err := s.store.Users().GetByID(ctx, app.UserID)
	if err != nil {
		logger.Warn("creation decision mail skipped", "request_id", app.ID, "error", err)
		return
	}
	if err := s.emailSvc.SendCreateDecision(ctx, applicant.Email, applicant.Name, app.ClubName, accepted); err != nil {
		logger.Warn("creation decision mail failed", "request_id", app.ID, "error", err)
	}
}

func (s *creationService) ListMyCreateRequests(ctx context.Context, userID int32) ([]domain.CreateApplication, error) {
	return s.store.CreateApplications().ListByUser(ctx, userID)
}

func (s *creationService) ListCreateRequests(ctx context.Context, actorID int32, reviewing bool, page, pageSize int32) ([]domain.CreateApplication, int32, error) {
	actor, err := s.store.Users().GetByID(ctx, actorID)
	if err != nil {
		return nil, 0, err
	}
	if !actor.IsAdministrator() {
		return nil, 0, domain.ErrPermissionDenied
	}
	return s.store.CreateApplications().ListByReviewState(ctx, reviewing, page, pageSize)
}
