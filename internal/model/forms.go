package model

import "time"

const (
	FormStatusPending   = "pending"
	FormStatusProcessed = "processed"
	FormStatusArchived  = "archived"
)

type ContactForm struct {
	Base
	FirstName   string  `db:"first_name" json:"firstName"`
	LastName    string  `db:"last_name" json:"lastName"`
	Email       string  `db:"email" json:"email"`
	Phone       string  `db:"phone" json:"phone"`
	Company     *string `db:"company" json:"company,omitempty"`
	Message     string  `db:"message" json:"message"`
	AcceptTerms bool    `db:"accept_terms" json:"acceptTerms"`
	Status      string  `db:"status" json:"status"`
	IPAddress   *string `db:"ip_address" json:"-"`
	UserAgent   *string `db:"user_agent" json:"-"`
}

type DevisForm struct {
	Base
	FirstName           string     `db:"first_name" json:"firstName"`
	LastName            string     `db:"last_name" json:"lastName"`
	Email               string     `db:"email" json:"email"`
	Phone               string     `db:"phone" json:"phone"`
	Company             string     `db:"company" json:"company"`
	ProjectType         string     `db:"project_type" json:"projectType"`
	Description         string     `db:"description" json:"description"`
	Budget              *string    `db:"budget" json:"budget,omitempty"`
	Quantity            *int       `db:"quantity" json:"quantity,omitempty"`
	Dimensions          JSONMap    `db:"dimensions" json:"dimensions,omitempty"`
	DesiredDeliveryDate *time.Time `db:"desired_delivery_date" json:"desiredDeliveryDate,omitempty"`
	AcceptTerms         bool       `db:"accept_terms" json:"acceptTerms"`
	Status              string     `db:"status" json:"status"`
	IPAddress           *string    `db:"ip_address" json:"-"`
	UserAgent           *string    `db:"user_agent" json:"-"`
}

type ContactFormPage struct {
	Data []ContactForm `json:"data"`
	Meta PageMeta      `json:"meta"`
}

type DevisFormPage struct {
	Data []DevisForm `json:"data"`
	Meta PageMeta    `json:"meta"`
}
