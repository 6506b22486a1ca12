package postgres

import (
	"context"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `u.id, u.email, u.username, u.password_hash, u.name, u.location, u.about_me, u.is_chairman, u.role_id, u.created_on,
	r.id, r.name, r.is_default, r.permissions`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{Role: &domain.Role{}}
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.Name, &u.Location, &u.AboutMe, &u.IsChairman, &u.RoleID, &u.CreatedOn,
		&u.Role.ID, &u.Role.Name, &u.Role.Default, &u.Role.Permissions)
	if err != nil {
		return nil, mapGetErr(err)
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, username, password_hash, name, location, about_me, is_chairman, role_id, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		u.Email, u.Username, u.PasswordHash, u.Name, u.Location, u.AboutMe, u.IsChairman, u.RoleID, time.Now()).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u JOIN roles r ON r.id = u.role_id WHERE u.id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u JOIN roles r ON r.id = u.role_id WHERE u.email = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u JOIN roles r ON r.id = u.role_id WHERE u.username = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email = $1, username = $2, password_hash = $3, name = $4, location = $5, about_me = $6, is_chairman = $7, role_id = $8
	          WHERE id = $9`
	_, err := r.db.ExecContext(ctx, query,
		u.Email, u.Username, u.PasswordHash, u.Name, u.Location, u.AboutMe, u.IsChairman, u.RoleID, u.ID)
	return err
}

func (r *userRepository) GetRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	role := &domain.Role{}
	query := `SELECT id, name, is_default, permissions FROM roles WHERE name = $1`
	err := r.db.QueryRowContext(ctx, query, name).Scan(&role.ID, &role.Name, &role.Default, &role.Permissions)
	if err != nil {
		return nil, mapGetErr(err)
	}
	return role, nil
}

func (r *userRepository) GetDefaultRole(ctx context.Context) (*domain.Role, error) {
	role := &domain.Role{}
	query := `SELECT id, name, is_default, permissions FROM roles WHERE is_default = TRUE LIMIT 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&role.ID, &role.Name, &role.Default, &role.Permissions)
	if err != nil {
		return nil, mapGetErr(err)
	}
	return role, nil
}
