package postgres

import (
	"context"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"

	"github.com/lib/pq"
)

type activityRepository struct {
	db DBTX
}

func NewActivityRepository(db DBTX) repository.ActivityRepository {
	return &activityRepository{db: db}
}

const activityColumns = `id, club_id, name, description, COALESCE(conclusion, ''), status, created_on`

func (r *activityRepository) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (club_id, name, description, status, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.ClubID, a.Name, a.Description, a.Status, time.Now()).Scan(&a.ID)
}

func (r *activityRepository) GetByID(ctx context.Context, id int32) (*domain.Activity, error) {
	a := &domain.Activity{}
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.ClubID, &a.Name, &a.Description, &a.Conclusion, &a.Status, &a.CreatedOn)
	if err != nil {
		return nil, mapGetErr(err)
	}
	return a, nil
}

func (r *activityRepository) ListByClub(ctx context.Context, clubID int32, page, pageSize int32) ([]domain.Activity, int32, error) {
	var total int32
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM activities WHERE club_id = $1`, clubID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + activityColumns + ` FROM activities WHERE club_id = $1
	          ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, clubID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	acts, err := scanActivities(rows)
	return acts, total, err
}

func (r *activityRepository) ListForMember(ctx context.Context, userID int32, ongoingOnly bool, page, pageSize int32) ([]domain.Activity, int32, error) {
	cond := `a.club_id IN (SELECT club_id FROM memberships WHERE user_id = $1)`
	if ongoingOnly {
		cond += ` AND a.status IN ('ACCEPTED', 'ROLLCALL')`
	}

	var total int32
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM activities a WHERE `+cond, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT a.id, a.club_id, a.name, a.description, COALESCE(a.conclusion, ''), a.status, a.created_on
	          FROM activities a WHERE ` + cond + `
	          ORDER BY a.created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	acts, err := scanActivities(rows)
	return acts, total, err
}

func (r *activityRepository) ListByAttendStatus(ctx context.Context, userID int32, status domain.AttendStatus, page, pageSize int32) ([]domain.Activity, int32, error) {
	var total int32
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM activities a JOIN attends t ON t.activity_id = a.id
		 WHERE t.user_id = $1 AND t.status = $2`, userID, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT a.id, a.club_id, a.name, a.description, COALESCE(a.conclusion, ''), a.status, a.created_on
	          FROM activities a JOIN attends t ON t.activity_id = a.id
	          WHERE t.user_id = $1 AND t.status = $2
	          ORDER BY a.created_on DESC LIMIT $3 OFFSET $4`
	rows, err := r.db.QueryContext(ctx, query, userID, status, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	acts, err := scanActivities(rows)
	return acts, total, err
}

func scanActivities(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]domain.Activity, error) {
	var acts []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.ClubID, &a.Name, &a.Description, &a.Conclusion, &a.Status, &a.CreatedOn); err != nil {
			return nil, err
		}
		acts = append(acts, a)
	}
	return acts, rows.Err()
}

func (r *activityRepository) UpdateStatus(ctx context.Context, id int32, to domain.ActivityStatus, from ...domain.ActivityStatus) error {
	query := `UPDATE activities SET status = $1 WHERE id = $2 AND status = ANY($3)`
	return checkAffected(r.db.ExecContext(ctx, query, to, id, pq.Array(statusStrings(from))))
}

func (r *activityRepository) Finish(ctx context.Context, id int32, conclusion string, from ...domain.ActivityStatus) error {
	query := `UPDATE activities SET status = $1, conclusion = $2 WHERE id = $3 AND status = ANY($4)`
	return checkAffected(r.db.ExecContext(ctx, query,
		domain.ActivityStatusFinished, conclusion, id, pq.Array(statusStrings(from))))
}

func statusStrings(statuses []domain.ActivityStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
