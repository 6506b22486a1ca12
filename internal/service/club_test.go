package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"
)

func TestClubService_GetClub(t *testing.T) {
	ctx := context.Background()
	store := NewMockStore()
	svc := service.NewClubService(store)

	store.clubs.On("GetByID", ctx, int32(10)).Return(chessClub(2), nil)
	store.clubs.On("ListMembers", ctx, int32(10)).Return([]domain.User{{ID: 2}, {ID: 1}}, nil)

	club, members, err := svc.GetClub(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, "Chess Club", club.Name)
	assert.Len(t, members, 2)
}

func TestClubService_UpdateClub(t *testing.T) {
	ctx := context.Background()

	t.Run("Chief renames", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewClubService(store)

		store.clubs.On("GetByID", ctx, int32(10)).Return(chessClub(2), nil)
		store.clubs.On("GetByName", ctx, "Go Club").Return(nil, domain.ErrNotFound)
		store.clubs.On("Update", ctx, mock.AnythingOfType("*domain.Club")).Return(nil)

		club, err := svc.UpdateClub(ctx, 2, 10, "Go Club", "board games")
		assert.NoError(t, err)
		assert.Equal(t, "Go Club", club.Name)
	})

	t.Run("Rename onto a taken name", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewClubService(store)

		store.clubs.On("GetByID", ctx, int32(10)).Return(chessClub(2), nil)
		store.clubs.On("GetByName", ctx, "Go Club").Return(&domain.Club{ID: 11, Name: "Go Club"}, nil)

		club, err := svc.UpdateClub(ctx, 2, 10, "Go Club", "")
		assert.ErrorIs(t, err, domain.ErrDuplicateName)
		assert.Nil(t, club)
	})

	t.Run("Same name skips the uniqueness check", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewClubService(store)

		store.clubs.On("GetByID", ctx, int32(10)).Return(chessClub(2), nil)
		store.clubs.On("Update", ctx, mock.AnythingOfType("*domain.Club")).Return(nil)

		club, err := svc.UpdateClub(ctx, 2, 10, "Chess Club", "new description")
		assert.NoError(t, err)
		assert.Equal(t, "new description", club.Description)
		store.clubs.AssertNotCalled(t, "GetByName", ctx, mock.Anything)
	})

	t.Run("Member may not edit", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewClubService(store)

		store.clubs.On("GetByID", ctx, int32(10)).Return(chessClub(2), nil)

		club, err := svc.UpdateClub(ctx, 5, 10, "Go Club", "")
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
		assert.Nil(t, club)
	})
}

func TestClubService_AppointVice(t *testing.T) {
	ctx := context.Background()

	t.Run("Chief appoints a member", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewClubService(store)

		store.clubs.On("GetByID", ctx, int32(10)).Return(chessClub(2), nil)
		store.clubs.On("IsMember", ctx, int32(10), int32(5)).Return(true, nil)
		store.clubs.On("Update", ctx, mock.AnythingOfType("*domain.Club")).Return(nil)

		club, err := svc.AppointVice(ctx, 2, 10, 5)
		assert.NoError(t, err)
		assert.NotNil(t, club.ViceID)
		assert.Equal(t, int32(5), *club.ViceID)
	})

	t.Run("Target must be a member", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewClubService(store)

		store.clubs.On("GetByID", ctx, int32(10)).Return(chessClub(2), nil)
		store.clubs.On("IsMember", ctx, int32(10), int32(5)).Return(false, nil)

		club, err := svc.AppointVice(ctx, 2, 10, 5)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, club)
	})

	t.Run("Vice may not appoint", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewClubService(store)

		viceID := int32(3)
		club := chessClub(2)
		club.ViceID = &viceID
		store.clubs.On("GetByID", ctx, int32(10)).Return(club, nil)

		res, err := svc.AppointVice(ctx, viceID, 10, 5)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
		assert.Nil(t, res)
	})
}

func TestClubService_ClubStats(t *testing.T) {
	ctx := context.Background()
	store := NewMockStore()
	svc := service.NewClubService(store)

	store.clubs.On("Stats", ctx).Return([]domain.ClubStats{
		{ClubID: 10, ClubName: "Chess Club", MemberCount: 12, OngoingActivities: 2, FinishedActivities: 5, TotalActivities: 9},
	}, nil)

	stats, err := svc.ClubStats(ctx)
	assert.NoError(t, err)
	assert.Len(t, stats, 1)
	assert.Equal(t, int32(12), stats[0].MemberCount)
}
