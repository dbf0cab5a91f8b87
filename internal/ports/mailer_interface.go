package ports

import (
	"context"

	"multipoles-backend/internal/model"
)

type Mailer interface {
	SendContactFormEmail(ctx context.Context, form *model.ContactForm) error
	SendDevisFormEmail(ctx context.Context, form *model.DevisForm) error
}
