package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"multipoles-backend/config"
	"multipoles-backend/internal/model"
	"multipoles-backend/internal/util"
)

// formStatusFilter builds the optional WHERE clause shared by both
// submission listings.
func formStatusFilter(status string) (string, []any) {
	if status == "" {
		return "", nil
	}
	return " WHERE status = $1", []any{status}
}

type ContactFormRepository struct {
	*config.Database
}

func NewContactFormRepository(database *config.Database) *ContactFormRepository {
	return &ContactFormRepository{database}
}

func (r *ContactFormRepository) Save(ctx context.Context, form *model.ContactForm) error {
	query := `INSERT INTO contact_forms (id, first_name, last_name, email, phone, company, message, accept_terms, status, ip_address, user_agent)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
				RETURNING created_at, updated_at`

	err := r.DB.QueryRowxContext(ctx, query,
		form.ID, form.FirstName, form.LastName, form.Email, form.Phone, form.Company,
		form.Message, form.AcceptTerms, form.Status, form.IPAddress, form.UserAgent,
	).Scan(&form.CreatedAt, &form.UpdatedAt)

	if err != nil {
		return util.LogError("[FormsRepo] inserting contact form failed", err)
	}
	return nil
}

func (r *ContactFormRepository) List(ctx context.Context, page, limit int, status string) (*model.ContactFormPage, error) {
	where, args := formStatusFilter(status)

	var total int
	if err := sqlx.GetContext(ctx, r.DB, &total, `SELECT COUNT(*) FROM contact_forms`+where, args...); err != nil {
		return nil, util.LogError("[FormsRepo] counting contact forms failed", err)
	}

	query := fmt.Sprintf(`SELECT id, first_name, last_name, email, phone, company, message, accept_terms, status, ip_address, user_agent, created_at, updated_at
				FROM contact_forms%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)

	args = append(args, limit, (page-1)*limit)
	forms := []model.ContactForm{}
	if err := sqlx.SelectContext(ctx, r.DB, &forms, query, args...); err != nil {
		return nil, util.LogError("[FormsRepo] listing contact forms failed", err)
	}

	return &model.ContactFormPage{
		Data: forms,
		Meta: model.PageMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: (total + limit - 1) / limit,
		},
	}, nil
}

func (r *ContactFormRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE contact_forms SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return util.LogError("[FormsRepo] updating contact form status failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[FormsRepo] reading affected rows failed", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type DevisFormRepository struct {
	*config.Database
}

func NewDevisFormRepository(database *config.Database) *DevisFormRepository {
	return &DevisFormRepository{database}
}

func (r *DevisFormRepository) Save(ctx context.Context, form *model.DevisForm) error {
	query := `INSERT INTO devis_forms (id, first_name, last_name, email, phone, company, project_type, description, budget, quantity, dimensions, desired_delivery_date, accept_terms, status, ip_address, user_agent)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
				RETURNING created_at, updated_at`

	err := r.DB.QueryRowxContext(ctx, query,
		form.ID, form.FirstName, form.LastName, form.Email, form.Phone, form.Company,
		form.ProjectType, form.Description, form.Budget, form.Quantity, form.Dimensions,
		form.DesiredDeliveryDate, form.AcceptTerms, form.Status, form.IPAddress, form.UserAgent,
	).Scan(&form.CreatedAt, &form.UpdatedAt)

	if err != nil {
		return util.LogError("[FormsRepo] inserting devis form failed", err)
	}
	return nil
}

func (r *DevisFormRepository) List(ctx context.Context, page, limit int, status string) (*model.DevisFormPage, error) {
	where, args := formStatusFilter(status)

	var total int
	if err := sqlx.GetContext(ctx, r.DB, &total, `SELECT COUNT(*) FROM devis_forms`+where, args...); err != nil {
		return nil, util.LogError("[FormsRepo] counting devis forms failed", err)
	}

	query := fmt.Sprintf(`SELECT id, first_name, last_name, email, phone, company, project_type, description, budget, quantity, dimensions, desired_delivery_date, accept_terms, status, ip_address, user_agent, created_at, updated_at
				FROM devis_forms%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)

	args = append(args, limit, (page-1)*limit)
	forms := []model.DevisForm{}
	if err := sqlx.SelectContext(ctx, r.DB, &forms, query, args...); err != nil {
		return nil, util.LogError("[FormsRepo] listing devis forms failed", err)
	}

	return &model.DevisFormPage{
		Data: forms,
		Meta: model.PageMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: (total + limit - 1) / limit,
		},
	}, nil
}

func (r *DevisFormRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE devis_forms SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return util.LogError("[FormsRepo] updating devis form status failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[FormsRepo] reading affected rows failed", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
