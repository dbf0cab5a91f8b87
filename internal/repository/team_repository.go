package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"multipoles-backend/config"
	"multipoles-backend/internal/model"
	"multipoles-backend/internal/util"
)

const teamColumns = `id, name, job_title, photo, bio, locale, position, email, phone, linkedin, active, created_at, updated_at`

type TeamRepository struct {
	*config.Database
}

func NewTeamRepository(database *config.Database) *TeamRepository {
	return &TeamRepository{database}
}

func (r *TeamRepository) Create(ctx context.Context, member *model.TeamMember) error {
	query := `INSERT INTO team_members (id, name, job_title, photo, bio, locale, position, email, phone, linkedin, active)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
				RETURNING created_at, updated_at`

	err := r.DB.QueryRowxContext(ctx, query,
		member.ID, member.Name, member.JobTitle, member.Photo, member.Bio, member.Locale,
		member.Position, member.Email, member.Phone, member.LinkedIn, member.Active,
	).Scan(&member.CreatedAt, &member.UpdatedAt)

	if err != nil {
		return util.LogError("[TeamRepo] inserting team member failed", err)
	}
	return nil
}

func (r *TeamRepository) ListActive(ctx context.Context, locale string) ([]model.TeamMember, error) {
	query := `SELECT ` + teamColumns + ` FROM team_members WHERE active = TRUE`
	args := []any{}
	if locale != "" {
		args = append(args, locale)
		query += ` AND locale = $1`
	}
	query += ` ORDER BY position ASC`

	members := []model.TeamMember{}
	if err := sqlx.SelectContext(ctx, r.DB, &members, query, args...); err != nil {
		return nil, util.LogError("[TeamRepo] listing active members failed", err)
	}
	return members, nil
}

func (r *TeamRepository) ListAll(ctx context.Context, locale string) ([]model.TeamMember, error) {
	query := `SELECT ` + teamColumns + ` FROM team_members`
	args := []any{}
	if locale != "" {
		args = append(args, locale)
		query += ` WHERE locale = $1`
	}
	query += ` ORDER BY position ASC`

	members := []model.TeamMember{}
	if err := sqlx.SelectContext(ctx, r.DB, &members, query, args...); err != nil {
		return nil, util.LogError("[TeamRepo] listing members failed", err)
	}
	return members, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (*model.TeamMember, error) {
	var member model.TeamMember
	err := sqlx.GetContext(ctx, r.DB, &member, `SELECT `+teamColumns+` FROM team_members WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, util.LogError("[TeamRepo] member lookup failed", err)
	}
	return &member, nil
}

func (r *TeamRepository) Update(ctx context.Context, member *model.TeamMember) error {
	query := `UPDATE team_members
				SET name = $2, job_title = $3, photo = $4, bio = $5, locale = $6,
					position = $7, email = $8, phone = $9, linkedin = $10, active = $11, updated_at = NOW()
				WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query,
		member.ID, member.Name, member.JobTitle, member.Photo, member.Bio, member.Locale,
		member.Position, member.Email, member.Phone, member.LinkedIn, member.Active)
	if err != nil {
		return util.LogError("[TeamRepo] updating member failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[TeamRepo] reading affected rows failed", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return util.LogError("[TeamRepo] deleting member failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[TeamRepo] reading affected rows failed", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
