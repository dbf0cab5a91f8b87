package requestresponse

import "multipoles-backend/internal/model"

// CreateUserRequest : body for creating a dashboard account
type CreateUserRequest struct {
	Email     string  `json:"email" example:"editor@multipoles.fr"`
	Password  string  `json:"password" example:"P@ssw0rd123"`
	FirstName *string `json:"firstName,omitempty" example:"Marie"`
	LastName  *string `json:"lastName,omitempty" example:"Dupont"`
	Role      string  `json:"role,omitempty" example:"admin"`
}

func (r *CreateUserRequest) Validate() error {
	errs := fieldErrors{}
	errs.require("email", r.Email)
	errs.require("password", r.Password)
	if _, ok := errs["email"]; !ok {
		errs.email("email", r.Email)
	}
	if len(r.Password) > 0 && len(r.Password) < 8 {
		errs["password"] = "must be at least 8 characters"
	}
	if r.Role != "" {
		errs.oneOf("role", r.Role, model.RoleSuperAdmin, model.RoleAdmin)
	}
	return errs.err()
}

// UpdateUserRequest : partial update, nil fields are left untouched
type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty" example:"editor@multipoles.fr"`
	Password  *string `json:"password,omitempty" example:"NewP@ssw0rd"`
	FirstName *string `json:"firstName,omitempty" example:"Marie"`
	LastName  *string `json:"lastName,omitempty" example:"Dupont"`
	Role      *string `json:"role,omitempty" example:"admin"`
}

func (r *UpdateUserRequest) Validate() error {
	errs := fieldErrors{}
	if r.Email != nil {
		errs.email("email", *r.Email)
	}
	if r.Password != nil && len(*r.Password) < 8 {
		errs["password"] = "must be at least 8 characters"
	}
	if r.Role != nil {
		errs.oneOf("role", *r.Role, model.RoleSuperAdmin, model.RoleAdmin)
	}
	return errs.err()
}
