package postgres

import (
	"context"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type createApplicationRepository struct {
	db DBTX
}

func NewCreateApplicationRepository(db DBTX) repository.CreateApplicationRepository {
	return &createApplicationRepository{db: db}
}

const createAppColumns = `id, user_id, club_name, description, status, created_on`

func (r *createApplicationRepository) Create(ctx context.Context, app *domain.CreateApplication) error {
	query := `INSERT INTO create_applications (user_id, club_name, description, status, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		app.UserID, app.ClubName, app.Description, app.Status, time.Now()).Scan(&app.ID)
}

func (r *createApplicationRepository) GetByID(ctx context.Context, id int32) (*domain.CreateApplication, error) {
	app := &domain.CreateApplication{}
	query := `SELECT ` + createAppColumns + ` FROM create_applications WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&app.ID, &app.UserID, &app.ClubName, &app.Description, &app.Status, &app.CreatedOn)
	if err != nil {
		return nil, mapGetErr(err)
	}
	return app, nil
}

func (r *createApplicationRepository) ExistsReviewingByName(ctx context.Context, clubName string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM create_applications WHERE club_name = $1 AND status = $2)`
	err := r.db.QueryRowContext(ctx, query, clubName, domain.ApplicationStatusReviewing).Scan(&exists)
	return exists, err
}

func (r *createApplicationRepository) ListByUser(ctx context.Context, userID int32) ([]domain.CreateApplication, error) {
	query := `SELECT ` + createAppColumns + ` FROM create_applications WHERE user_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCreateApplications(rows)
}

func (r *createApplicationRepository) ListByReviewState(ctx context.Context, reviewing bool, page, pageSize int32) ([]domain.CreateApplication, int32, error) {
	cond := `status = $1`
	if !reviewing {
		cond = `status != $1`
	}

	var total int32
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM create_applications WHERE `+cond,
		domain.ApplicationStatusReviewing).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + createAppColumns + ` FROM create_applications WHERE ` + cond +
		` ORDER BY created_on LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, domain.ApplicationStatusReviewing, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	apps, err := scanCreateApplications(rows)
	return apps, total, err
}

func scanCreateApplications(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]domain.CreateApplication, error) {
	var apps []domain.CreateApplication
	for rows.Next() {
		var app domain.CreateApplication
		if err := rows.Scan(&app.ID, &app.UserID, &app.ClubName, &app.Description, &app.Status, &app.CreatedOn); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *createApplicationRepository) UpdateStatus(ctx context.Context, id int32, from, to domain.ApplicationStatus) error {
	query := `UPDATE create_applications SET status = $1 WHERE id = $2 AND status = $3`
	return checkAffected(r.db.ExecContext(ctx, query, to, id, from))
}
