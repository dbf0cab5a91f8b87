package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"multipoles-backend/internal/model"
	"multipoles-backend/internal/model/requestresponse"
	"multipoles-backend/internal/service"
	"multipoles-backend/internal/util"
)

type BlogHandler struct {
	blogService *service.BlogService
}

func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func blogQueryFromRequest(r *http.Request) model.BlogQuery {
	q := r.URL.Query()
	return model.BlogQuery{
		Page:     queryInt(r, "page", 1),
		Limit:    queryInt(r, "limit", 12),
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Status:   q.Get("status"),
		Tag:      q.Get("tag"),
		Locale:   requestLocale(r),
	}
}

// ListPublic godoc
// @Summary List published blog posts
// @Tags Blog
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Full-text filter"
// @Param category query string false "Category filter"
// @Param tag query string false "Tag filter"
// @Param locale query string false "fr or en"
// @Success 200 {object} model.BlogPage
// @Router /api/v1/content/blog [get]
func (h *BlogHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	page, err := h.blogService.ListPublic(r.Context(), blogQueryFromRequest(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, page)
}

// GetBySlug godoc
// @Summary Fetch a published post by slug
// @Description Reading a post bumps its view counter.
// @Tags Blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} model.BlogPost
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /api/v1/content/blog/{slug} [get]
func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogService.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, post)
}

// ListAdmin godoc
// @Summary List posts in every status
// @Tags Blog
// @Produce json
// @Param status query string false "draft, published or scheduled"
// @Success 200 {object} model.BlogPage
// @Security ApiKeyAuth
// @Router /api/v1/admin/blog [get]
func (h *BlogHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	page, err := h.blogService.List(r.Context(), blogQueryFromRequest(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, page)
}

// Get godoc
// @Summary Fetch one post by id
// @Tags Blog
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} model.BlogPost
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/blog/{id} [get]
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, post)
}

// Create godoc
// @Summary Create a post
// @Tags Blog
// @Accept json
// @Produce json
// @Param body body requestresponse.CreateBlogPostRequest true "New post"
// @Success 201 {object} model.BlogPost
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/blog [post]
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.CreateBlogPostRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	post, err := h.blogService.Create(r.Context(), req.ToModel())
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusCreated, post)
}

// Update godoc
// @Summary Replace a post
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Post id"
// @Param body body requestresponse.UpdateBlogPostRequest true "New content"
// @Success 200 {object} model.BlogPost
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/blog/{id} [put]
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.UpdateBlogPostRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	post, err := h.blogService.Update(r.Context(), chi.URLParam(r, "id"), req.ToModel())
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, post)
}

// Delete godoc
// @Summary Delete a post
// @Tags Blog
// @Param id path string true "Post id"
// @Success 204 "No Content"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/blog/{id} [delete]
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.blogService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Publish godoc
// @Summary Publish a post immediately
// @Tags Blog
// @Produce json
// @Param id path string true "Post id"
// @Success 200 {object} model.BlogPost
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/blog/{id}/publish [post]
func (h *BlogHandler) Publish(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogService.Publish(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, post)
}

// Schedule godoc
// @Summary Schedule a post for later publication
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Post id"
// @Param body body requestresponse.ScheduleBlogPostRequest true "Publication date"
// @Success 200 {object} model.BlogPost
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/blog/{id}/schedule [post]
func (h *BlogHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.ScheduleBlogPostRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	post, err := h.blogService.Schedule(r.Context(), chi.URLParam(r, "id"), req.ScheduledAt)
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, post)
}

// UploadURL godoc
// @Summary Presign a cover image upload
// @Tags Blog
// @Accept json
// @Produce json
// @Param body body requestresponse.UploadURLRequest true "Filename"
// @Success 200 {object} model.UploadTarget
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/blog/upload-url [post]
func (h *BlogHandler) UploadURL(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.UploadURLRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	target, err := h.blogService.UploadURL(r.Context(), req.Filename)
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, target)
}
