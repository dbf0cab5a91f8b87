package model

import "time"

const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
)

type User struct {
	Base
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password" json:"-"`
	FirstName    *string    `db:"first_name" json:"firstName,omitempty"`
	LastName     *string    `db:"last_name" json:"lastName,omitempty"`
	Role         string     `db:"role" json:"role"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"lastLoginAt,omitempty"`
}

// PublicView strips everything a client is not supposed to see.
func (u *User) PublicView() *PublicUser {
	return &PublicUser{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

type PublicUser struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	FirstName   *string    `json:"firstName,omitempty"`
	LastName    *string    `json:"lastName,omitempty"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func ValidRole(role string) bool {
	return role == RoleSuperAdmin || role == RoleAdmin
}
