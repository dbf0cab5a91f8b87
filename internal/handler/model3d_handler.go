package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"multipoles-backend/internal/model/requestresponse"
	"multipoles-backend/internal/service"
	"multipoles-backend/internal/util"
)

// Model3DHandler serves the interactive 3D viewer catalog.
type Model3DHandler struct {
	modelService *service.Model3DService
}

func NewModel3DHandler(modelService *service.Model3DService) *Model3DHandler {
	return &Model3DHandler{modelService: modelService}
}

// ListPublic godoc
// @Summary Active 3D models
// @Tags Models3D
// @Produce json
// @Param category query string false "Category filter"
// @Param locale query string false "fr or en"
// @Success 200 {array} model.Model3D
// @Router /api/v1/content/models-3d [get]
func (h *Model3DHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	models, err := h.modelService.ListPublic(r.Context(), r.URL.Query().Get("category"), requestLocale(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, models)
}

// GetPublic godoc
// @Summary Fetch one 3D model
// @Tags Models3D
// @Produce json
// @Param id path string true "Model id"
// @Success 200 {object} model.Model3D
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/content/models-3d/{id} [get]
func (h *Model3DHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	m, err := h.modelService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, m)
}

// ListAdmin godoc
// @Summary All 3D models
// @Tags Models3D
// @Produce json
// @Success 200 {array} model.Model3D
// @Security ApiKeyAuth
// @Router /api/v1/admin/models-3d [get]
func (h *Model3DHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	models, err := h.modelService.ListAdmin(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, models)
}

// Create godoc
// @Summary Register a 3D model
// @Tags Models3D
// @Accept json
// @Produce json
// @Param body body requestresponse.Model3DRequest true "New model"
// @Success 201 {object} model.Model3D
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/models-3d [post]
func (h *Model3DHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.Model3DRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	m, err := h.modelService.Create(r.Context(), req.ToModel())
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusCreated, m)
}

// Update godoc
// @Summary Replace a 3D model
// @Tags Models3D
// @Accept json
// @Produce json
// @Param id path string true "Model id"
// @Param body body requestresponse.Model3DRequest true "New content"
// @Success 200 {object} model.Model3D
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/models-3d/{id} [put]
func (h *Model3DHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.Model3DRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	m, err := h.modelService.Update(r.Context(), chi.URLParam(r, "id"), req.ToModel())
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, m)
}

// Delete godoc
// @Summary Delete a 3D model
// @Tags Models3D
// @Param id path string true "Model id"
// @Success 204 "No Content"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/models-3d/{id} [delete]
func (h *Model3DHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.modelService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadURL godoc
// @Summary Presign a model asset upload
// @Tags Models3D
// @Accept json
// @Produce json
// @Param body body requestresponse.UploadURLRequest true "Filename"
// @Success 200 {object} model.UploadTarget
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/models-3d/upload-url [post]
func (h *Model3DHandler) UploadURL(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.UploadURLRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	target, err := h.modelService.UploadURL(r.Context(), req.Filename)
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, target)
}
