package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"multipoles-backend/internal/model"
	"multipoles-backend/internal/service"
)

// ===== MOCKS =====

type MockContactFormRepository struct {
	mock.Mock
}

func (m *MockContactFormRepository) Save(ctx context.Context, form *model.ContactForm) error {
	return m.Called(ctx, form).Error(0)
}

func (m *MockContactFormRepository) List(ctx context.Context, page, limit int, status string) (*model.ContactFormPage, error) {
	args := m.Called(ctx, page, limit, status)
	if p, ok := args.Get(0).(*model.ContactFormPage); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockContactFormRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockDevisFormRepository struct {
	mock.Mock
}

func (m *MockDevisFormRepository) Save(ctx context.Context, form *model.DevisForm) error {
	return m.Called(ctx, form).Error(0)
}

func (m *MockDevisFormRepository) List(ctx context.Context, page, limit int, status string) (*model.DevisFormPage, error) {
	args := m.Called(ctx, page, limit, status)
	if p, ok := args.Get(0).(*model.DevisFormPage); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDevisFormRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendContactFormEmail(ctx context.Context, form *model.ContactForm) error {
	return m.Called(ctx, form).Error(0)
}

func (m *MockMailer) SendDevisFormEmail(ctx context.Context, form *model.DevisForm) error {
	return m.Called(ctx, form).Error(0)
}

// ===== TESTS =====

func newTestFormsService() (*service.FormsService, *MockContactFormRepository, *MockDevisFormRepository, *MockMailer) {
	contactRepo := new(MockContactFormRepository)
	devisRepo := new(MockDevisFormRepository)
	mailer := new(MockMailer)
	return service.NewFormsService(contactRepo, devisRepo, mailer), contactRepo, devisRepo, mailer
}

func TestSubmitContact_Success(t *testing.T) {
	formsService, contactRepo, _, mailer := newTestFormsService()

	contactRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.ContactForm")).Return(nil)
	mailer.On("SendContactFormEmail", mock.Anything, mock.AnythingOfType("*model.ContactForm")).Return(nil)

	form := &model.ContactForm{
		FirstName: "Jean",
		LastName:  "Dupont",
		Email:     "jean@example.fr",
		Message:   "Bonjour",
	}

	saved, err := formsService.SubmitContact(context.Background(), form)

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, model.FormStatusPending, saved.Status)
	mailer.AssertExpectations(t)
}

func TestSubmitContact_MailFailureDoesNotFailSubmission(t *testing.T) {
	formsService, contactRepo, _, mailer := newTestFormsService()

	contactRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.ContactForm")).Return(nil)
	mailer.On("SendContactFormEmail", mock.Anything, mock.Anything).Return(errors.New("smtp unreachable"))

	saved, err := formsService.SubmitContact(context.Background(), &model.ContactForm{Email: "jean@example.fr"})

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
}

func TestSubmitContact_SaveError(t *testing.T) {
	formsService, contactRepo, _, mailer := newTestFormsService()

	contactRepo.On("Save", mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := formsService.SubmitContact(context.Background(), &model.ContactForm{Email: "jean@example.fr"})

	assert.Error(t, err)
	mailer.AssertNotCalled(t, "SendContactFormEmail", mock.Anything, mock.Anything)
}

func TestSubmitDevis_Success(t *testing.T) {
	formsService, _, devisRepo, mailer := newTestFormsService()

	devisRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.DevisForm")).Return(nil)
	mailer.On("SendDevisFormEmail", mock.Anything, mock.AnythingOfType("*model.DevisForm")).Return(nil)

	form := &model.DevisForm{
		FirstName:   "Marie",
		LastName:    "Durand",
		Email:       "marie@example.fr",
		ProjectType: "enseigne",
		Description: "Enseigne lumineuse",
	}

	saved, err := formsService.SubmitDevis(context.Background(), form)

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, model.FormStatusPending, saved.Status)
	mailer.AssertExpectations(t)
}

func TestSubmitDevis_MailFailureDoesNotFailSubmission(t *testing.T) {
	formsService, _, devisRepo, mailer := newTestFormsService()

	devisRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendDevisFormEmail", mock.Anything, mock.Anything).Return(errors.New("smtp unreachable"))

	saved, err := formsService.SubmitDevis(context.Background(), &model.DevisForm{Email: "marie@example.fr"})

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
}

func TestListContact_NormalizesPagination(t *testing.T) {
	formsService, contactRepo, _, _ := newTestFormsService()

	page := &model.ContactFormPage{Meta: model.PageMeta{Page: 1, Limit: 20}}
	contactRepo.On("List", mock.Anything, 1, 20, "").Return(page, nil)

	got, err := formsService.ListContact(context.Background(), 0, 500, "")

	require.NoError(t, err)
	assert.Equal(t, page, got)
}

func TestListDevis_PassesStatusFilter(t *testing.T) {
	formsService, _, devisRepo, _ := newTestFormsService()

	page := &model.DevisFormPage{}
	devisRepo.On("List", mock.Anything, 2, 10, model.FormStatusProcessed).Return(page, nil)

	got, err := formsService.ListDevis(context.Background(), 2, 10, model.FormStatusProcessed)

	require.NoError(t, err)
	assert.Equal(t, page, got)
}

func TestUpdateContactStatus(t *testing.T) {
	formsService, contactRepo, _, _ := newTestFormsService()

	contactRepo.On("UpdateStatus", mock.Anything, "f1", model.FormStatusArchived).Return(nil)

	err := formsService.UpdateContactStatus(context.Background(), "f1", model.FormStatusArchived)

	assert.NoError(t, err)
	contactRepo.AssertExpectations(t)
}
