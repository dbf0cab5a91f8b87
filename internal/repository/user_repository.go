package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"multipoles-backend/config"
	"multipoles-backend/internal/model"
	"multipoles-backend/internal/util"
)

const userColumns = `id, email, password, first_name, last_name, role, last_login_at, created_at, updated_at`

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	query := `INSERT INTO users (id, email, password, first_name, last_name, role)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING ` + userColumns

	created := &model.User{}
	err := r.DB.QueryRowxContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Role,
	).StructScan(created)

	if err != nil {
		return nil, util.LogError("[UserRepo] inserting user failed", err)
	}

	return created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user model.User
	if err := sqlx.GetContext(ctx, r.DB, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, util.LogError("[UserRepo] user lookup by email failed", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user model.User
	if err := sqlx.GetContext(ctx, r.DB, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, util.LogError("[UserRepo] user lookup by id failed", err)
	}
	return &user, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE users SET last_login_at = $2, updated_at = NOW() WHERE id = $1`

	if _, err := r.DB.ExecContext(ctx, query, id, at); err != nil {
		return util.LogError("[UserRepo] stamping last login failed", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	query := `UPDATE users
				SET email = $2, password = $3, first_name = $4, last_name = $5, role = $6, updated_at = NOW()
				WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Role)
	if err != nil {
		return util.LogError("[UserRepo] updating user failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[UserRepo] reading affected rows failed", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return util.LogError("[UserRepo] deleting user failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[UserRepo] reading affected rows failed", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns users newest first, optionally narrowed by a role and a
// case-insensitive search over email and names.
func (r *UserRepository) List(ctx context.Context, search, role string) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE 1=1`
	args := []any{}

	if role != "" {
		args = append(args, role)
		query += ` AND role = $1`
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		placeholder := `$1`
		if role != "" {
			placeholder = `$2`
		}
		query += ` AND (email ILIKE ` + placeholder +
			` OR first_name ILIKE ` + placeholder +
			` OR last_name ILIKE ` + placeholder + `)`
	}
	query += ` ORDER BY created_at DESC`

	var users []model.User
	if err := sqlx.SelectContext(ctx, r.DB, &users, query, args...); err != nil {
		return nil, util.LogError("[UserRepo] listing users failed", err)
	}
	return users, nil
}
