package requestresponse

import (
	"time"

	"multipoles-backend/internal/model"
)

// ContactFormRequest : public contact form submission
type ContactFormRequest struct {
	FirstName   string  `json:"firstName" example:"Jean"`
	LastName    string  `json:"lastName" example:"Martin"`
	Email       string  `json:"email" example:"jean.martin@example.com"`
	Phone       string  `json:"phone" example:"+33612345678"`
	Company     *string `json:"company,omitempty"`
	Message     string  `json:"message"`
	AcceptTerms bool    `json:"acceptTerms"`
}

func (r *ContactFormRequest) Validate() error {
	errs := fieldErrors{}
	errs.require("firstName", r.FirstName)
	errs.require("lastName", r.LastName)
	errs.require("email", r.Email)
	errs.require("phone", r.Phone)
	errs.require("message", r.Message)
	if _, ok := errs["email"]; !ok {
		errs.email("email", r.Email)
	}
	if !r.AcceptTerms {
		errs["acceptTerms"] = "must be accepted"
	}
	return errs.err()
}

func (r *ContactFormRequest) ToModel() *model.ContactForm {
	return &model.ContactForm{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		Company:     r.Company,
		Message:     r.Message,
		AcceptTerms: r.AcceptTerms,
	}
}

// DevisFormRequest : public quote request submission
type DevisFormRequest struct {
	FirstName           string        `json:"firstName" example:"Jean"`
	LastName            string        `json:"lastName" example:"Martin"`
	Email               string        `json:"email" example:"jean.martin@example.com"`
	Phone               string        `json:"phone" example:"+33612345678"`
	Company             string        `json:"company" example:"Atelier Martin"`
	ProjectType         string        `json:"projectType" example:"signalétique"`
	Description         string        `json:"description"`
	Budget              *string       `json:"budget,omitempty"`
	Quantity            *int          `json:"quantity,omitempty"`
	Dimensions          model.JSONMap `json:"dimensions,omitempty"`
	DesiredDeliveryDate *time.Time    `json:"desiredDeliveryDate,omitempty"`
	AcceptTerms         bool          `json:"acceptTerms"`
}

func (r *DevisFormRequest) Validate() error {
	errs := fieldErrors{}
	errs.require("firstName", r.FirstName)
	errs.require("lastName", r.LastName)
	errs.require("email", r.Email)
	errs.require("phone", r.Phone)
	errs.require("company", r.Company)
	errs.require("projectType", r.ProjectType)
	errs.require("description", r.Description)
	if _, ok := errs["email"]; !ok {
		errs.email("email", r.Email)
	}
	if r.Quantity != nil && *r.Quantity < 1 {
		errs["quantity"] = "must be at least 1"
	}
	if !r.AcceptTerms {
		errs["acceptTerms"] = "must be accepted"
	}
	return errs.err()
}

func (r *DevisFormRequest) ToModel() *model.DevisForm {
	return &model.DevisForm{
		FirstName:           r.FirstName,
		LastName:            r.LastName,
		Email:               r.Email,
		Phone:               r.Phone,
		Company:             r.Company,
		ProjectType:         r.ProjectType,
		Description:         r.Description,
		Budget:              r.Budget,
		Quantity:            r.Quantity,
		Dimensions:          r.Dimensions,
		DesiredDeliveryDate: r.DesiredDeliveryDate,
		AcceptTerms:         r.AcceptTerms,
	}
}

// UpdateFormStatusRequest : admin status transition for submissions
type UpdateFormStatusRequest struct {
	Status string `json:"status" example:"processed"`
}

func (r *UpdateFormStatusRequest) Validate() error {
	errs := fieldErrors{}
	errs.require("status", r.Status)
	if r.Status != "" {
		errs.oneOf("status", r.Status, model.FormStatusPending, model.FormStatusProcessed, model.FormStatusArchived)
	}
	return errs.err()
}
