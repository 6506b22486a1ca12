package service

import (
	"context"
	"errors"
	"fmt"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type clubService struct {
	store repository.Store
}

func NewClubService(store repository.Store) ClubService {
	return &clubService{store: store}
}

func (s *clubService) ListClubs(ctx context.Context, page, pageSize int32) ([]domain.Club, int32, error) {
	return s.store.Clubs().List(ctx, page, pageSize)
}

func (s *clubService) ListMyClubs(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Club, int32, error) {
	return s.store.Clubs().ListByMember(ctx, userID, page, pageSize)
}

func (s *clubService) GetClub(ctx context.Context, clubID int32) (*domain.Club, []domain.User, error) {
	club, err := s.store.Clubs().GetByID(ctx, clubID)
	if err != nil {
		return nil, nil, err
	}
	members, err := s.store.Clubs().ListMembers(ctx, club.ID)
	if err != nil {
		return nil, nil, err
	}
	return club, members, nil
}

// UpdateClub edits name and description. Managers only; renaming re-checks
// the global club-name uniqueness.
func (s *clubService) UpdateClub(ctx context.Context, actorID, clubID int32, name, description string) (*domain.Club, error) {
	club, err := s.store.Clubs().GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if !club.IsManager(actorID) {
		return nil, domain.ErrPermissionDenied
	}

	if name != club.Name {
		if _, err := s.store.Clubs().GetByName(ctx, name); err == nil {
			return nil, fmt.Errorf("%w: club %q exists", domain.ErrDuplicateName, name)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	club.Name = name
	club.Description = description
	if err := s.store.Clubs().Update(ctx, club); err != nil {
		return nil, err
	}
	return club, nil
}

// AppointVice names a member as the club's vice. Chief only; appointing
// replaces any previous vice.
func (s *clubService) AppointVice(ctx context.Context, actorID, clubID, userID int32) (*domain.Club, error) {
	club, err := s.store.Clubs().GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club.ChiefID != actorID {
		return nil, domain.ErrPermissionDenied
	}

	member, err := s.store.Clubs().IsMember(ctx, club.ID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, fmt.Errorf("%w: user %d is not a member", domain.ErrNotFound, userID)
	}

	club.ViceID = &userID
	if err := s.store.Clubs().Update(ctx, club); err != nil {
		return nil, err
	}
	return club, nil
}

func (s *clubService) ClubStats(ctx context.Context) ([]domain.ClubStats, error) {
	return s.store.Clubs().Stats(ctx)
}
