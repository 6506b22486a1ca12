package postgres

import (
	"context"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"

	"github.com/lib/pq"
)

type attendRepository struct {
	db DBTX
}

func NewAttendRepository(db DBTX) repository.AttendRepository {
	return &attendRepository{db: db}
}

const attendColumns = `id, user_id, activity_id, status, created_on`

func (r *attendRepository) Create(ctx context.Context, att *domain.Attend) error {
	query := `INSERT INTO attends (user_id, activity_id, status, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, att.UserID, att.ActivityID, att.Status, time.Now()).Scan(&att.ID)
}

func (r *attendRepository) GetByID(ctx context.Context, id int32) (*domain.Attend, error) {
	att := &domain.Attend{}
	query := `SELECT ` + attendColumns + ` FROM attends WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&att.ID, &att.UserID, &att.ActivityID, &att.Status, &att.CreatedOn)
	if err != nil {
		return nil, mapGetErr(err)
	}
	return att, nil
}

func (r *attendRepository) GetByUserActivity(ctx context.Context, userID, activityID int32) (*domain.Attend, error) {
	att := &domain.Attend{}
	query := `SELECT ` + attendColumns + ` FROM attends WHERE user_id = $1 AND activity_id = $2`
	err := r.db.QueryRowContext(ctx, query, userID, activityID).Scan(
		&att.ID, &att.UserID, &att.ActivityID, &att.Status, &att.CreatedOn)
	if err != nil {
		return nil, mapGetErr(err)
	}
	return att, nil
}

func (r *attendRepository) ListByActivity(ctx context.Context, activityID int32) ([]domain.Attend, error) {
	query := `SELECT ` + attendColumns + ` FROM attends WHERE activity_id = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, activityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var atts []domain.Attend
	for rows.Next() {
		var att domain.Attend
		if err := rows.Scan(&att.ID, &att.UserID, &att.ActivityID, &att.Status, &att.CreatedOn); err != nil {
			return nil, err
		}
		atts = append(atts, att)
	}
	return atts, rows.Err()
}

func (r *attendRepository) UpdateStatus(ctx context.Context, id int32, from, to domain.AttendStatus) error {
	query := `UPDATE attends SET status = $1 WHERE id = $2 AND status = $3`
	return checkAffected(r.db.ExecContext(ctx, query, to, id, from))
}

// MarkRollcall rewrites the roll-call outcome as a full overwrite: listed ids
// become attended, everything else that was accepted or attended drops back
// to accepted. Running it twice with the same set is a no-op.
func (r *attendRepository) MarkRollcall(ctx context.Context, activityID int32, attendedIDs []int32) error {
	// pq.Array renders a nil slice as SQL NULL, and ANY(NULL) matches
	// nothing, which would turn an empty roll-call into a no-op instead of
	// demoting every attended record.
	if attendedIDs == nil {
		attendedIDs = []int32{}
	}
	ids := pq.Array(attendedIDs)

	up := `UPDATE attends SET status = $1 WHERE activity_id = $2 AND status IN ($3, $1) AND id = ANY($4)`
	if _, err := r.db.ExecContext(ctx, up,
		domain.AttendStatusAttended, activityID, domain.AttendStatusAccepted, ids); err != nil {
		return err
	}

	down := `UPDATE attends SET status = $1 WHERE activity_id = $2 AND status = $3 AND NOT (id = ANY($4))`
	_, err := r.db.ExecContext(ctx, down,
		domain.AttendStatusAccepted, activityID, domain.AttendStatusAttended, ids)
	return err
}
