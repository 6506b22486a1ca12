package postgres

import (
	"context"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type joinApplicationRepository struct {
	db DBTX
}

func NewJoinApplicationRepository(db DBTX) repository.JoinApplicationRepository {
	return &joinApplicationRepository{db: db}
}

const joinAppColumns = `id, user_id, club_id, description, status, created_on`

func (r *joinApplicationRepository) Create(ctx context.Context, app *domain.JoinApplication) error {
	query := `INSERT INTO join_applications (user_id, club_id, description, status, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		app.UserID, app.ClubID, app.Description, app.Status, time.Now()).Scan(&app.ID)
}

func (r *joinApplicationRepository) GetByID(ctx context.Context, id int32) (*domain.JoinApplication, error) {
	app := &domain.JoinApplication{}
	query := `SELECT ` + joinAppColumns + ` FROM join_applications WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&app.ID, &app.UserID, &app.ClubID, &app.Description, &app.Status, &app.CreatedOn)
	if err != nil {
		return nil, mapGetErr(err)
	}
	return app, nil
}

func (r *joinApplicationRepository) ExistsReviewing(ctx context.Context, userID, clubID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM join_applications WHERE user_id = $1 AND club_id = $2 AND status = $3)`
	err := r.db.QueryRowContext(ctx, query, userID, clubID, domain.ApplicationStatusReviewing).Scan(&exists)
	return exists, err
}

func (r *joinApplicationRepository) ListByUser(ctx context.Context, userID int32) ([]domain.JoinApplication, error) {
	query := `SELECT ` + joinAppColumns + ` FROM join_applications WHERE user_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJoinApplications(rows)
}

func (r *joinApplicationRepository) ListByClub(ctx context.Context, clubID int32, reviewing bool, page, pageSize int32) ([]domain.JoinApplication, int32, error) {
	cond := `club_id = $1 AND status = $2`
	if !reviewing {
		cond = `club_id = $1 AND status != $2`
	}

	var total int32
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM join_applications WHERE `+cond,
		clubID, domain.ApplicationStatusReviewing).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + joinAppColumns + ` FROM join_applications WHERE ` + cond +
		` ORDER BY created_on LIMIT $3 OFFSET $4`
	rows, err := r.db.QueryContext(ctx, query, clubID, domain.ApplicationStatusReviewing, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	apps, err := scanJoinApplications(rows)
	return apps, total, err
}

func scanJoinApplications(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]domain.JoinApplication, error) {
	var apps []domain.JoinApplication
	for rows.Next() {
		var app domain.JoinApplication
		if err := rows.Scan(&app.ID, &app.UserID, &app.ClubID, &app.Description, &app.Status, &app.CreatedOn); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *joinApplicationRepository) UpdateStatus(ctx context.Context, id int32, from, to domain.ApplicationStatus) error {
	query := `UPDATE join_applications SET status = $1 WHERE id = $2 AND status = $3`
	return checkAffected(r.db.ExecContext(ctx, query, to, id, from))
}
