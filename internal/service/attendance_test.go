package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"
)

func TestAttendanceService_ApplyToAttend(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAttendanceService(store)

		store.activities.On("GetByID", ctx, int32(20)).Return(activityIn(domain.ActivityStatusAccepted), nil)
		store.attends.On("GetByUserActivity", ctx, int32(1), int32(20)).Return(nil, domain.ErrNotFound)
		store.attends.On("Create", ctx, mock.AnythingOfType("*domain.Attend")).Return(nil)

		att, err := svc.ApplyToAttend(ctx, 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, domain.AttendStatusReviewing, att.Status)
	})

	t.Run("Wrapped not-found still means no record", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAttendanceService(store)

		store.activities.On("GetByID", ctx, int32(20)).Return(activityIn(domain.ActivityStatusAccepted), nil)
		store.attends.On("GetByUserActivity", ctx, int32(1), int32(20)).
			Return(nil, fmt.Errorf("lookup attend: %w", domain.ErrNotFound))
		store.attends.On("Create", ctx, mock.AnythingOfType("*domain.Attend")).Return(nil)

		att, err := svc.ApplyToAttend(ctx, 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, domain.AttendStatusReviewing, att.Status)
	})

	t.Run("Second application carries the existing status", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAttendanceService(store)

		store.activities.On("GetByID", ctx, int32(20)).Return(activityIn(domain.ActivityStatusAccepted), nil)
		store.attends.On("GetByUserActivity", ctx, int32(1), int32(20)).
			Return(&domain.Attend{ID: 30, Status: domain.AttendStatusRejected}, nil)

		att, err := svc.ApplyToAttend(ctx, 1, 20)
		assert.ErrorIs(t, err, domain.ErrDuplicateRequest)
		assert.Contains(t, err.Error(), "rejected")
		assert.Nil(t, att)
	})
}

func TestAttendanceService_ResolveAttendRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("Chief accepts", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAttendanceService(store)

		store.attends.On("GetByID", ctx, int32(30)).
			Return(&domain.Attend{ID: 30, UserID: 1, ActivityID: 20, Status: domain.AttendStatusReviewing}, nil)
		store.activities.On("GetByID", ctx, int32(20)).Return(activityIn(domain.ActivityStatusAccepted), nil)
		store.clubs.On("GetByID", ctx, int32(10)).Return(chessClub(2), nil)
		store.attends.On("UpdateStatus", ctx, int32(30),
			domain.AttendStatusReviewing, domain.AttendStatusAccepted).Return(nil)

		att, err := svc.ResolveAttendRequest(ctx, 2, 30, domain.DecisionAccept)
		assert.NoError(t, err)
		assert.Equal(t, domain.AttendStatusAccepted, att.Status)
	})

	t.Run("Vice may not resolve attendance", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAttendanceService(store)

		viceID := int32(3)
		club := chessClub(2)
		club.ViceID = &viceID

		store.attends.On("GetByID", ctx, int32(30)).
			Return(&domain.Attend{ID: 30, ActivityID: 20, Status: domain.AttendStatusReviewing}, nil)
		store.activities.On("GetByID", ctx, int32(20)).Return(activityIn(domain.ActivityStatusAccepted), nil)
		store.clubs.On("GetByID", ctx, int32(10)).Return(club, nil)

		att, err := svc.ResolveAttendRequest(ctx, viceID, 30, domain.DecisionAccept)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
		assert.Nil(t, att)
	})

	t.Run("Already decided", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAttendanceService(store)

		store.attends.On("GetByID", ctx, int32(30)).
			Return(&domain.Attend{ID: 30, ActivityID: 20, Status: domain.AttendStatusAccepted}, nil)
		store.activities.On("GetByID", ctx, int32(20)).Return(activityIn(domain.ActivityStatusAccepted), nil)
		store.clubs.On("GetByID", ctx, int32(10)).Return(chessClub(2), nil)
		store.attends.On("UpdateStatus", ctx, int32(30),
			domain.AttendStatusReviewing, domain.AttendStatusRejected).Return(domain.ErrInvalidState)

		att, err := svc.ResolveAttendRequest(ctx, 2, 30, domain.DecisionReject)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
		assert.Nil(t, att)
	})
}

func TestAttendanceService_CheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("Accepted attendee checks in during roll call", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAttendanceService(store)

		store.activities.On("GetByID", ctx, int32(20)).Return(activityIn(domain.ActivityStatusRollcall), nil)
		store.attends.On("GetByUserActivity", ctx, int32(1), int32(20)).
			Return(&domain.Attend{ID: 30, UserID: 1, ActivityID: 20, Status: domain.AttendStatusAccepted}, nil)
		store.attends.On("UpdateStatus", ctx, int32(30),
			domain.AttendStatusAccepted, domain.AttendStatusAttended).Return(nil)

		att, err := svc.CheckIn(ctx, 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, domain.AttendStatusAttended, att.Status)
	})

	t.Run("Activity not in roll call", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAttendanceService(store)

		store.activities.On("GetByID", ctx, int32(20)).Return(activityIn(domain.ActivityStatusAccepted), nil)

		att, err := svc.CheckIn(ctx, 1, 20)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
		assert.Nil(t, att)
	})

	t.Run("Never registered", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAttendanceService(store)

		store.activities.On("GetByID", ctx, int32(20)).Return(activityIn(domain.ActivityStatusRollcall), nil)
		store.attends.On("GetByUserActivity", ctx, int32(1), int32(20)).Return(nil, domain.ErrNotFound)

		att, err := svc.CheckIn(ctx, 1, 20)
		assert.ErrorIs(t, err, domain.ErrNotRegistered)
		assert.Nil(t, att)
	})

	t.Run("Second check-in", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAttendanceService(store)

		store.activities.On("GetByID", ctx, int32(20)).Return(activityIn(domain.ActivityStatusRollcall), nil)
		store.attends.On("GetByUserActivity", ctx, int32(1), int32(20)).
			Return(&domain.Attend{ID: 30, Status: domain.AttendStatusAttended}, nil)

		att, err := svc.CheckIn(ctx, 1, 20)
		assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
		assert.Nil(t, att)
	})

	t.Run("Registration still reviewing", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAttendanceService(store)

		store.activities.On("GetByID", ctx, int32(20)).Return(activityIn(domain.ActivityStatusRollcall), nil)
		store.attends.On("GetByUserActivity", ctx, int32(1), int32(20)).
			Return(&domain.Attend{ID: 30, Status: domain.AttendStatusReviewing}, nil)

		att, err := svc.CheckIn(ctx, 1, 20)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
		assert.Nil(t, att)
	})
}

func TestAttendanceService_BulkRollcall(t *testing.T) {
	ctx := context.Background()

	t.Run("Chief overwrites the outcome", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAttendanceService(store)

		ids := []int32{30, 31}
		result := []domain.Attend{
			{ID: 30, Status: domain.AttendStatusAttended},
			{ID: 31, Status: domain.AttendStatusAttended},
			{ID: 32, Status: domain.AttendStatusAccepted},
		}

		store.activities.On("GetByID", ctx, int32(20)).Return(activityIn(domain.ActivityStatusRollcall), nil)
		store.clubs.On("GetByID", ctx, int32(10)).Return(chessClub(2), nil)
		store.attends.On("MarkRollcall", ctx, int32(20), ids).Return(nil)
		store.attends.On("ListByActivity", ctx, int32(20)).Return(result, nil)

		attends, err := svc.BulkRollcall(ctx, 2, 20, ids)
		assert.NoError(t, err)
		assert.Len(t, attends, 3)
	})

	t.Run("Non-chief denied", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAttendanceService(store)

		store.activities.On("GetByID", ctx, int32(20)).Return(activityIn(domain.ActivityStatusRollcall), nil)
		store.clubs.On("GetByID", ctx, int32(10)).Return(chessClub(2), nil)

		attends, err := svc.BulkRollcall(ctx, 9, 20, []int32{30})
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
		assert.Nil(t, attends)
		store.attends.AssertNotCalled(t, "MarkRollcall", ctx, mock.Anything, mock.Anything)
	})
}

func TestAttendanceService_ListParticipants(t *testing.T) {
	ctx := context.Background()

	t.Run("Manager lists", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAttendanceService(store)

		store.activities.On("GetByID", ctx, int32(20)).Return(activityIn(domain.ActivityStatusAccepted), nil)
		store.clubs.On("GetByID", ctx, int32(10)).Return(chessClub(2), nil)
		store.attends.On("ListByActivity", ctx, int32(20)).Return([]domain.Attend{{ID: 30}}, nil)

		attends, err := svc.ListParticipants(ctx, 2, 20)
		assert.NoError(t, err)
		assert.Len(t, attends, 1)
	})

	t.Run("Outsider denied", func(t *testing.T) {
		store := NewMockStore()
		svc := service.NewAttendanceService(store)

		store.activities.On("GetByID", ctx, int32(20)).Return(activityIn(domain.ActivityStatusAccepted), nil)
		store.clubs.On("GetByID", ctx, int32(10)).Return(chessClub(2), nil)

		_, err := svc.ListParticipants(ctx, 9, 20)
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})
}
