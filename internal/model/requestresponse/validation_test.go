package requestresponse_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multipoles-backend/internal/model"
	"multipoles-backend/internal/model/requestresponse"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var vErr *requestresponse.ValidationError
	require.True(t, errors.As(err, &vErr))
	return vErr.Fields
}

func TestContactFormRequest_Validate(t *testing.T) {
	valid := requestresponse.ContactFormRequest{
		FirstName:   "Jean",
		LastName:    "Martin",
		Email:       "jean.martin@example.com",
		Phone:       "+33612345678",
		Message:     "Bonjour",
		AcceptTerms: true,
	}

	tests := []struct {
		name    string
		mutate  func(r *requestresponse.ContactFormRequest)
		badKeys []string
	}{
		{"valid", func(r *requestresponse.ContactFormRequest) {}, nil},
		{"missing email", func(r *requestresponse.ContactFormRequest) { r.Email = "" }, []string{"email"}},
		{"malformed email", func(r *requestresponse.ContactFormRequest) { r.Email = "not-an-address" }, []string{"email"}},
		{"terms not accepted", func(r *requestresponse.ContactFormRequest) { r.AcceptTerms = false }, []string{"acceptTerms"}},
		{"empty message", func(r *requestresponse.ContactFormRequest) { r.Message = "" }, []string{"message"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)

			err := r.Validate()
			if tt.badKeys == nil {
				assert.NoError(t, err)
				return
			}
			fields := fieldsOf(t, err)
			for _, key := range tt.badKeys {
				assert.Contains(t, fields, key)
			}
		})
	}
}

func TestDevisFormRequest_Validate_Quantity(t *testing.T) {
	zero := 0
	r := requestresponse.DevisFormRequest{
		FirstName:   "Jean",
		LastName:    "Martin",
		Email:       "jean.martin@example.com",
		Phone:       "+33612345678",
		Company:     "Atelier Martin",
		ProjectType: "enseigne",
		Description: "Enseigne lumineuse",
		Quantity:    &zero,
		AcceptTerms: true,
	}

	fields := fieldsOf(t, r.Validate())
	assert.Contains(t, fields, "quantity")

	one := 1
	r.Quantity = &one
	assert.NoError(t, r.Validate())
}

func TestCreateBlogPostRequest_Validate(t *testing.T) {
	valid := requestresponse.CreateBlogPostRequest{
		Title:   "Nos nouveaux procédés",
		Slug:    "nos-nouveaux-procedes",
		Content: "…",
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("bad slug", func(t *testing.T) {
		r := valid
		r.Slug = "Pas Un Slug"
		assert.Contains(t, fieldsOf(t, r.Validate()), "slug")
	})

	t.Run("unknown status", func(t *testing.T) {
		r := valid
		r.Status = "parked"
		assert.Contains(t, fieldsOf(t, r.Validate()), "status")
	})

	t.Run("scheduled without date", func(t *testing.T) {
		r := valid
		r.Status = model.BlogStatusScheduled
		assert.Contains(t, fieldsOf(t, r.Validate()), "scheduledAt")
	})

	t.Run("scheduled with date", func(t *testing.T) {
		r := valid
		r.Status = model.BlogStatusScheduled
		at := time.Now().Add(time.Hour)
		r.ScheduledAt = &at
		assert.NoError(t, r.Validate())
	})
}

func TestLoginRequest_Validate(t *testing.T) {
	r := requestresponse.LoginRequest{Email: "admin@multipoles.fr", Password: "s3cret"}
	assert.NoError(t, r.Validate())

	r.Password = ""
	assert.Contains(t, fieldsOf(t, r.Validate()), "password")
}
