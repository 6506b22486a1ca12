package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

// MockStore bundles the repository mocks. RunInTx hands the callback the
// store itself, so transactional paths exercise the same expectations.
type MockStore struct {
	mock.Mock
	users      *MockUserRepo
	clubs      *MockClubRepo
	createApps *MockCreateApplicationRepo
	joinApps   *MockJoinApplicationRepo
	activities *MockActivityRepo
	attends    *MockAttendRepo
}

func NewMockStore() *MockStore {
	return &MockStore{
		users:      new(MockUserRepo),
		clubs:      new(MockClubRepo),
		createApps: new(MockCreateApplicationRepo),
		joinApps:   new(MockJoinApplicationRepo),
		activities: new(MockActivityRepo),
		attends:    new(MockAttendRepo),
	}
}

func (m *MockStore) Users() repository.UserRepository { return m.users }
func (m *MockStore) Clubs() repository.ClubRepository { return m.clubs }
func (m *MockStore) CreateApplications() repository.CreateApplicationRepository {
	return m.createApps
}
func (m *MockStore) JoinApplications() repository.JoinApplicationRepository { return m.joinApps }
func (m *MockStore) Activities() repository.ActivityRepository              { return m.activities }
func (m *MockStore) Attends() repository.AttendRepository                   { return m.attends }

func (m *MockStore) RunInTx(ctx context.Context, fn func(tx repository.Store) error) error {
	return fn(m)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}
func (m *MockUserRepo) GetDefaultRole(ctx context.Context) (*domain.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

// MockClubRepo
type MockClubRepo struct {
	mock.Mock
}

func (m *MockClubRepo) Create(ctx context.Context, club *domain.Club) error {
	args := m.Called(ctx, club)
	return args.Error(0)
}
func (m *MockClubRepo) GetByID(ctx context.Context, id int32) (*domain.Club, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Club), args.Error(1)
}
func (m *MockClubRepo) GetByName(ctx context.Context, name string) (*domain.Club, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Club), args.Error(1)
}
func (m *MockClubRepo) Update(ctx context.Context, club *domain.Club) error {
	args := m.Called(ctx, club)
	return args.Error(0)
}
func (m *MockClubRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Club, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Club), args.Get(1).(int32), args.Error(2)
}
func (m *MockClubRepo) ListByMember(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Club, int32, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Club), args.Get(1).(int32), args.Error(2)
}
func (m *MockClubRepo) AddMember(ctx context.Context, mem *domain.Membership) error {
	args := m.Called(ctx, mem)
	return args.Error(0)
}
func (m *MockClubRepo) IsMember(ctx context.Context, clubID, userID int32) (bool, error) {
	args := m.Called(ctx, clubID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockClubRepo) ListMembers(ctx context.Context, clubID int32) ([]domain.User, error) {
	args := m.Called(ctx, clubID)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockClubRepo) Stats(ctx context.Context) ([]domain.ClubStats, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ClubStats), args.Error(1)
}
func (m *MockClubRepo) SaveStatsSnapshot(ctx context.Context, takenOn string, stats []domain.ClubStats) error {
	args := m.Called(ctx, takenOn, stats)
	return args.Error(0)
}

// MockCreateApplicationRepo
type MockCreateApplicationRepo struct {
	mock.Mock
}

func (m *MockCreateApplicationRepo) Create(ctx context.Context, app *domain.CreateApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockCreateApplicationRepo) GetByID(ctx context.Context, id int32) (*domain.CreateApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreateApplication), args.Error(1)
}
func (m *MockCreateApplicationRepo) ExistsReviewingByName(ctx context.Context, clubName string) (bool, error) {
	args := m.Called(ctx, clubName)
	return args.Bool(0), args.Error(1)
}
func (m *MockCreateApplicationRepo) ListByUser(ctx context.Context, userID int32) ([]domain.CreateApplication, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.CreateApplication), args.Error(1)
}
func (m *MockCreateApplicationRepo) ListByReviewState(ctx context.Context, reviewing bool, page, pageSize int32) ([]domain.CreateApplication, int32, error) {
	args := m.Called(ctx, reviewing, page, pageSize)
	return args.Get(0).([]domain.CreateApplication), args.Get(1).(int32), args.Error(2)
}
func (m *MockCreateApplicationRepo) UpdateStatus(ctx context.Context, id int32, from, to domain.ApplicationStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

// MockJoinApplicationRepo
type MockJoinApplicationRepo struct {
	mock.Mock
}

func (m *MockJoinApplicationRepo) Create(ctx context.Context, app *domain.JoinApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockJoinApplicationRepo) GetByID(ctx context.Context, id int32) (*domain.JoinApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinApplication), args.Error(1)
}
func (m *MockJoinApplicationRepo) ExistsReviewing(ctx context.Context, userID, clubID int32) (bool, error) {
	args := m.Called(ctx, userID, clubID)
	return args.Bool(0), args.Error(1)
}
func (m *MockJoinApplicationRepo) ListByUser(ctx context.Context, userID int32) ([]domain.JoinApplication, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.JoinApplication), args.Error(1)
}
func (m *MockJoinApplicationRepo) ListByClub(ctx context.Context, clubID int32, reviewing bool, page, pageSize int32) ([]domain.JoinApplication, int32, error) {
	args := m.Called(ctx, clubID, reviewing, page, pageSize)
	return args.Get(0).([]domain.JoinApplication), args.Get(1).(int32), args.Error(2)
}
func (m *MockJoinApplicationRepo) UpdateStatus(ctx context.Context, id int32, from, to domain.ApplicationStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

// MockActivityRepo
type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) Create(ctx context.Context, act *domain.Activity) error {
	args := m.Called(ctx, act)
	return args.Error(0)
}
func (m *MockActivityRepo) GetByID(ctx context.Context, id int32) (*domain.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}
func (m *MockActivityRepo) ListByClub(ctx context.Context, clubID int32, page, pageSize int32) ([]domain.Activity, int32, error) {
	args := m.Called(ctx, clubID, page, pageSize)
	return args.Get(0).([]domain.Activity), args.Get(1).(int32), args.Error(2)
}
func (m *MockActivityRepo) ListForMember(ctx context.Context, userID int32, ongoingOnly bool, page, pageSize int32) ([]domain.Activity, int32, error) {
	args := m.Called(ctx, userID, ongoingOnly, page, pageSize)
	return args.Get(0).([]domain.Activity), args.Get(1).(int32), args.Error(2)
}
func (m *MockActivityRepo) ListByAttendStatus(ctx context.Context, userID int32, status domain.AttendStatus, page, pageSize int32) ([]domain.Activity, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	return args.Get(0).([]domain.Activity), args.Get(1).(int32), args.Error(2)
}
func (m *MockActivityRepo) UpdateStatus(ctx context.Context, id int32, to domain.ActivityStatus, from ...domain.ActivityStatus) error {
	args := m.Called(ctx, id, to, from)
	return args.Error(0)
}
func (m *MockActivityRepo) Finish(ctx context.Context, id int32, conclusion string, from ...domain.ActivityStatus) error {
	args := m.Called(ctx, id, conclusion, from)
	return args.Error(0)
}

// MockAttendRepo
type MockAttendRepo struct {
	mock.Mock
}

func (m *MockAttendRepo) Create(ctx context.Context, att *domain.Attend) error {
	args := m.Called(ctx, att)
	return args.Error(0)
}
func (m *MockAttendRepo) GetByID(ctx context.Context, id int32) (*domain.Attend, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attend), args.Error(1)
}
func (m *MockAttendRepo) GetByUserActivity(ctx context.Context, userID, activityID int32) (*domain.Attend, error) {
	args := m.Called(ctx, userID, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attend), args.Error(1)
}
func (m *MockAttendRepo) ListByActivity(ctx context.Context, activityID int32) ([]domain.Attend, error) {
	args := m.Called(ctx, activityID)
	return args.Get(0).([]domain.Attend), args.Error(1)
}
func (m *MockAttendRepo) UpdateStatus(ctx context.Context, id int32, from, to domain.AttendStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}
func (m *MockAttendRepo) MarkRollcall(ctx context.Context, activityID int32, attendedIDs []int32) error {
	args := m.Called(ctx, activityID, attendedIDs)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendJoinDecision(ctx context.Context, email, name, clubName string, accepted bool) error {
	args := m.Called(ctx, email, name, clubName, accepted)
	return args.Error(0)
}
func (m *MockEmailService) SendCreateDecision(ctx context.Context, email, name, clubName string, accepted bool) error {
	args := m.Called(ctx, email, name, clubName, accepted)
	return args.Error(0)
}
