package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"multipoles-backend/internal/locale"
	"multipoles-backend/internal/model/requestresponse"
	"multipoles-backend/internal/service"
	"multipoles-backend/internal/util"
)

// FormsHandler covers the two public submission endpoints and the
// admin inbox behind them.
type FormsHandler struct {
	formsService *service.FormsService
}

func NewFormsHandler(formsService *service.FormsService) *FormsHandler {
	return &FormsHandler{formsService: formsService}
}

func clientMeta(r *http.Request) (ip, userAgent *string) {
	if host := clientIP(r); host != "" {
		ip = &host
	}
	if ua := r.UserAgent(); ua != "" {
		userAgent = &ua
	}
	return ip, userAgent
}

// SubmitContact godoc
// @Summary Submit the contact form
// @Tags Forms
// @Accept json
// @Produce json
// @Param body body requestresponse.ContactFormRequest true "Submission"
// @Success 201 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Router /api/v1/content/contact [post]
func (h *FormsHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.ContactFormRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	form := req.ToModel()
	form.IPAddress, form.UserAgent = clientMeta(r)

	if _, err := h.formsService.SubmitContact(r.Context(), form); err != nil {
		respondError(w, r, err)
		return
	}

	loc := locale.Pick(r.Header.Get("Accept-Language"))
	util.WriteJSON(w, http.StatusCreated, requestresponse.MessageResponse{
		Message: locale.T(loc, "forms", "contactReceived"),
	})
}

// SubmitDevis godoc
// @Summary Submit a quote request
// @Tags Forms
// @Accept json
// @Produce json
// @Param body body requestresponse.DevisFormRequest true "Submission"
// @Success 201 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Router /api/v1/content/devis [post]
func (h *FormsHandler) SubmitDevis(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.DevisFormRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	form := req.ToModel()
	form.IPAddress, form.UserAgent = clientMeta(r)

	if _, err := h.formsService.SubmitDevis(r.Context(), form); err != nil {
		respondError(w, r, err)
		return
	}

	loc := locale.Pick(r.Header.Get("Accept-Language"))
	util.WriteJSON(w, http.StatusCreated, requestresponse.MessageResponse{
		Message: locale.T(loc, "forms", "devisReceived"),
	})
}

// ListContact godoc
// @Summary Contact form inbox
// @Tags Forms
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param status query string false "pending, processed or archived"
// @Success 200 {object} model.ContactFormPage
// @Security ApiKeyAuth
// @Router /api/v1/admin/forms/contact [get]
func (h *FormsHandler) ListContact(w http.ResponseWriter, r *http.Request) {
	page, err := h.formsService.ListContact(r.Context(),
		queryInt(r, "page", 1), queryInt(r, "limit", 20), r.URL.Query().Get("status"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, page)
}

// ListDevis godoc
// @Summary Quote request inbox
// @Tags Forms
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param status query string false "pending, processed or archived"
// @Success 200 {object} model.DevisFormPage
// @Security ApiKeyAuth
// @Router /api/v1/admin/forms/devis [get]
func (h *FormsHandler) ListDevis(w http.ResponseWriter, r *http.Request) {
	page, err := h.formsService.ListDevis(r.Context(),
		queryInt(r, "page", 1), queryInt(r, "limit", 20), r.URL.Query().Get("status"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, page)
}

// UpdateContactStatus godoc
// @Summary Move a contact submission through the inbox workflow
// @Tags Forms
// @Accept json
// @Produce json
// @Param id path string true "Submission id"
// @Param body body requestresponse.UpdateFormStatusRequest true "New status"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/forms/contact/{id}/status [patch]
func (h *FormsHandler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.formsService.UpdateContactStatus)
}

// UpdateDevisStatus godoc
// @Summary Move a quote request through the inbox workflow
// @Tags Forms
// @Accept json
// @Produce json
// @Param id path string true "Submission id"
// @Param body body requestresponse.UpdateFormStatusRequest true "New status"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/forms/devis/{id}/status [patch]
func (h *FormsHandler) UpdateDevisStatus(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.formsService.UpdateDevisStatus)
}

func (h *FormsHandler) updateStatus(w http.ResponseWriter, r *http.Request, update func(ctx context.Context, id, status string) error) {
	var req requestresponse.UpdateFormStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if err := update(r.Context(), chi.URLParam(r, "id"), req.Status); err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, requestresponse.MessageResponse{Message: "status updated"})
}
