package service

import (
	"context"

	"github.com/google/uuid"

	"multipoles-backend/internal/model"
	"multipoles-backend/internal/ports"
	"multipoles-backend/internal/util"
)

type FormsService struct {
	contactRepository ports.ContactFormRepository
	devisRepository   ports.DevisFormRepository
	mailer            ports.Mailer
}

func NewFormsService(contactRepository ports.ContactFormRepository, devisRepository ports.DevisFormRepository, mailer ports.Mailer) *FormsService {
	return &FormsService{
		contactRepository: contactRepository,
		devisRepository:   devisRepository,
		mailer:            mailer,
	}
}

// SubmitContact stores the submission and notifies the site owner by
// email. The notification is best-effort: a mail failure is logged and
// the submission still succeeds.
func (s *FormsService) SubmitContact(ctx context.Context, form *model.ContactForm) (*model.ContactForm, error) {
	form.ID = uuid.New().String()
	form.Status = model.FormStatusPending

	if err := s.contactRepository.Save(ctx, form); err != nil {
		return nil, err
	}

	if err := s.mailer.SendContactFormEmail(ctx, form); err != nil {
		util.LogError("failed to send contact form notification", err)
	}
	return form, nil
}

func (s *FormsService) SubmitDevis(ctx context.Context, form *model.DevisForm) (*model.DevisForm, error) {
	form.ID = uuid.New().String()
	form.Status = model.FormStatusPending

	if err := s.devisRepository.Save(ctx, form); err != nil {
		return nil, err
	}

	if err := s.mailer.SendDevisFormEmail(ctx, form); err != nil {
		util.LogError("failed to send devis form notification", err)
	}
	return form, nil
}

func (s *FormsService) ListContact(ctx context.Context, page, limit int, status string) (*model.ContactFormPage, error) {
	page, limit = normalizePage(page, limit)
	return s.contactRepository.List(ctx, page, limit, status)
}

func (s *FormsService) ListDevis(ctx context.Context, page, limit int, status string) (*model.DevisFormPage, error) {
	page, limit = normalizePage(page, limit)
	return s.devisRepository.List(ctx, page, limit, status)
}

func (s *FormsService) UpdateContactStatus(ctx context.Context, id, status string) error {
	return s.contactRepository.UpdateStatus(ctx, id, status)
}

func (s *FormsService) UpdateDevisStatus(ctx context.Context, id, status string) error {
	return s.devisRepository.UpdateStatus(ctx, id, status)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
