package postgres

import (
	"context"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type clubRepository struct {
	db DBTX
}

func NewClubRepository(db DBTX) repository.ClubRepository {
	return &clubRepository{db: db}
}

const clubColumns = `id, name, description, chief_id, vice_id, created_on`

func (r *clubRepository) Create(ctx context.Context, c *domain.Club) error {
	query := `INSERT INTO clubs (name, description, chief_id, vice_id, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Name, c.Description, c.ChiefID, c.ViceID, time.Now()).Scan(&c.ID)
}

func (r *clubRepository) GetByID(ctx context.Context, id int32) (*domain.Club, error) {
	c := &domain.Club{}
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.ChiefID, &c.ViceID, &c.CreatedOn)
	if err != nil {
		return nil, mapGetErr(err)
	}
	return c, nil
}

func (r *clubRepository) GetByName(ctx context.Context, name string) (*domain.Club, error) {
	c := &domain.Club{}
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE name = $1`
	err := r.db.QueryRowContext(ctx, query, name).Scan(&c.ID, &c.Name, &c.Description, &c.ChiefID, &c.ViceID, &c.CreatedOn)
	if err != nil {
		return nil, mapGetErr(err)
	}
	return c, nil
}

func (r *clubRepository) Update(ctx context.Context, c *domain.Club) error {
	query := `UPDATE clubs SET name = $1, description = $2, chief_id = $3, vice_id = $4 WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query, c.Name, c.Description, c.ChiefID, c.ViceID, c.ID)
	return err
}

func (r *clubRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Club, int32, error) {
	var total int32
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clubs`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT c.id, c.name, c.description, c.chief_id, c.vice_id, c.created_on,
	                 (SELECT COUNT(*) FROM memberships m WHERE m.club_id = c.id) AS member_count
	          FROM clubs c ORDER BY c.id LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	clubs, err := scanClubs(rows)
	return clubs, total, err
}

func (r *clubRepository) ListByMember(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Club, int32, error) {
	var total int32
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM memberships WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT c.id, c.name, c.description, c.chief_id, c.vice_id, c.created_on,
	                 (SELECT COUNT(*) FROM memberships m2 WHERE m2.club_id = c.id) AS member_count
	          FROM clubs c JOIN memberships m ON m.club_id = c.id
	          WHERE m.user_id = $1 ORDER BY c.id LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	clubs, err := scanClubs(rows)
	return clubs, total, err
}

func scanClubs(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]domain.Club, error) {
	var clubs []domain.Club
	for rows.Next() {
		var c domain.Club
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ChiefID, &c.ViceID, &c.CreatedOn, &c.MemberCount); err != nil {
			return nil, err
		}
		clubs = append(clubs, c)
	}
	return clubs, rows.Err()
}

func (r *clubRepository) AddMember(ctx context.Context, m *domain.Membership) error {
	query := `INSERT INTO memberships (club_id, user_id, joined_on) VALUES ($1, $2, $3)
	          ON CONFLICT (club_id, user_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, m.ClubID, m.UserID, time.Now())
	return err
}

func (r *clubRepository) IsMember(ctx context.Context, clubID, userID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM memberships WHERE club_id = $1 AND user_id = $2)`
	err := r.db.QueryRowContext(ctx, query, clubID, userID).Scan(&exists)
	return exists, err
}

func (r *clubRepository) ListMembers(ctx context.Context, clubID int32) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u
	          JOIN roles r ON r.id = u.role_id
	          JOIN memberships m ON m.user_id = u.id
	          WHERE m.club_id = $1 ORDER BY m.joined_on`
	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *clubRepository) Stats(ctx context.Context) ([]domain.ClubStats, error) {
	query := `SELECT c.id, c.name,
	                 (SELECT COUNT(*) FROM memberships m WHERE m.club_id = c.id),
	                 COUNT(*) FILTER (WHERE a.status IN ('ACCEPTED', 'ROLLCALL')),
	                 COUNT(*) FILTER (WHERE a.status = 'FINISHED'),
	                 COUNT(a.id)
	          FROM clubs c LEFT JOIN activities a ON a.club_id = c.id
	          GROUP BY c.id, c.name
	          ORDER BY COUNT(*) FILTER (WHERE a.status IN ('ACCEPTED', 'ROLLCALL', 'FINISHED')) DESC, c.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.ClubStats
	for rows.Next() {
		var s domain.ClubStats
		if err := rows.Scan(&s.ClubID, &s.ClubName, &s.MemberCount, &s.OngoingActivities, &s.FinishedActivities, &s.TotalActivities); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *clubRepository) SaveStatsSnapshot(ctx context.Context, takenOn string, stats []domain.ClubStats) error {
	query := `INSERT INTO club_stats_snapshots (taken_on, club_id, member_count, ongoing_activities, finished_activities, total_activities)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (taken_on, club_id) DO UPDATE SET
	            member_count = EXCLUDED.member_count,
	            ongoing_activities = EXCLUDED.ongoing_activities,
	            finished_activities = EXCLUDED.finished_activities,
	            total_activities = EXCLUDED.total_activities`
	for _, s := range stats {
		if _, err := r.db.ExecContext(ctx, query,
			takenOn, s.ClubID, s.MemberCount, s.OngoingActivities, s.FinishedActivities, s.TotalActivities); err != nil {
			return err
		}
	}
	return nil
}
