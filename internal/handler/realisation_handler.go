package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"multipoles-backend/internal/model/requestresponse"
	"multipoles-backend/internal/service"
	"multipoles-backend/internal/util"
)

// RealisationHandler serves the portfolio section.
type RealisationHandler struct {
	realisationService *service.RealisationService
}

func NewRealisationHandler(realisationService *service.RealisationService) *RealisationHandler {
	return &RealisationHandler{realisationService: realisationService}
}

// ListPublic godoc
// @Summary Published portfolio entries
// @Tags Portfolio
// @Produce json
// @Param category query string false "Category filter"
// @Param featured query bool false "Only featured entries"
// @Param locale query string false "fr or en"
// @Success 200 {array} model.Realisation
// @Router /api/v1/content/realisations [get]
func (h *RealisationHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	featured := r.URL.Query().Get("featured") == "true"
	realisations, err := h.realisationService.ListPublic(r.Context(), r.URL.Query().Get("category"), requestLocale(r), featured)
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, realisations)
}

// GetPublic godoc
// @Summary Fetch one portfolio entry
// @Tags Portfolio
// @Produce json
// @Param id path string true "Entry id"
// @Success 200 {object} model.Realisation
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/content/realisations/{id} [get]
func (h *RealisationHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	realisation, err := h.realisationService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, realisation)
}

// ListAdmin godoc
// @Summary All portfolio entries, drafts included
// @Tags Portfolio
// @Produce json
// @Param status query string false "draft or published"
// @Param category query string false "Category filter"
// @Success 200 {array} model.Realisation
// @Security ApiKeyAuth
// @Router /api/v1/admin/realisations [get]
func (h *RealisationHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	realisations, err := h.realisationService.ListAdmin(r.Context(), q.Get("status"), q.Get("category"), q.Get("locale"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, realisations)
}

// Create godoc
// @Summary Create a portfolio entry
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param body body requestresponse.RealisationRequest true "New entry"
// @Success 201 {object} model.Realisation
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/realisations [post]
func (h *RealisationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RealisationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	realisation, err := h.realisationService.Create(r.Context(), req.ToModel())
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusCreated, realisation)
}

// Update godoc
// @Summary Replace a portfolio entry
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param id path string true "Entry id"
// @Param body body requestresponse.RealisationRequest true "New content"
// @Success 200 {object} model.Realisation
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/realisations/{id} [put]
func (h *RealisationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RealisationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	realisation, err := h.realisationService.Update(r.Context(), chi.URLParam(r, "id"), req.ToModel())
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, realisation)
}

// Delete godoc
// @Summary Delete a portfolio entry
// @Tags Portfolio
// @Param id path string true "Entry id"
// @Success 204 "No Content"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/realisations/{id} [delete]
func (h *RealisationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.realisationService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadURL godoc
// @Summary Presign a portfolio image upload
// @Tags Portfolio
// @Accept json
// @Produce json
// @Param body body requestresponse.UploadURLRequest true "Filename"
// @Success 200 {object} model.UploadTarget
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/realisations/upload-url [post]
func (h *RealisationHandler) UploadURL(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.UploadURLRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	target, err := h.realisationService.UploadURL(r.Context(), req.Filename)
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, target)
}
