package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"multipoles-backend/internal/model/requestresponse"
	"multipoles-backend/internal/service"
	"multipoles-backend/internal/util"
)

// CarouselHandler serves the homepage hero slides.
type CarouselHandler struct {
	carouselService *service.CarouselService
}

func NewCarouselHandler(carouselService *service.CarouselService) *CarouselHandler {
	return &CarouselHandler{carouselService: carouselService}
}

// ListPublic godoc
// @Summary Active carousel slides
// @Tags Content
// @Produce json
// @Param locale query string false "fr or en"
// @Success 200 {array} model.CarouselSlide
// @Router /api/v1/content/carousel [get]
func (h *CarouselHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	slides, err := h.carouselService.ListPublic(r.Context(), requestLocale(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, slides)
}

// ListAdmin godoc
// @Summary All carousel slides, active or not
// @Tags Content
// @Produce json
// @Success 200 {array} model.CarouselSlide
// @Security ApiKeyAuth
// @Router /api/v1/admin/carousel [get]
func (h *CarouselHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	slides, err := h.carouselService.ListAdmin(r.Context(), r.URL.Query().Get("locale"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, slides)
}

// Create godoc
// @Summary Create a slide
// @Tags Content
// @Accept json
// @Produce json
// @Param body body requestresponse.CarouselSlideRequest true "New slide"
// @Success 201 {object} model.CarouselSlide
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/carousel [post]
func (h *CarouselHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.CarouselSlideRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	slide, err := h.carouselService.Create(r.Context(), req.ToModel())
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusCreated, slide)
}

// Update godoc
// @Summary Replace a slide
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Slide id"
// @Param body body requestresponse.CarouselSlideRequest true "New content"
// @Success 200 {object} model.CarouselSlide
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/carousel/{id} [put]
func (h *CarouselHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.CarouselSlideRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	slide, err := h.carouselService.Update(r.Context(), chi.URLParam(r, "id"), req.ToModel())
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, slide)
}

// Delete godoc
// @Summary Delete a slide
// @Tags Content
// @Param id path string true "Slide id"
// @Success 204 "No Content"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/carousel/{id} [delete]
func (h *CarouselHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.carouselService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// TeamHandler serves the team page roster.
type TeamHandler struct {
	teamService *service.TeamService
}

func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// ListPublic godoc
// @Summary Active team members
// @Tags Content
// @Produce json
// @Param locale query string false "fr or en"
// @Success 200 {array} model.TeamMember
// @Router /api/v1/content/team [get]
func (h *TeamHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	members, err := h.teamService.ListPublic(r.Context(), requestLocale(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, members)
}

// ListAdmin godoc
// @Summary All team members
// @Tags Content
// @Produce json
// @Success 200 {array} model.TeamMember
// @Security ApiKeyAuth
// @Router /api/v1/admin/team [get]
func (h *TeamHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	members, err := h.teamService.ListAdmin(r.Context(), r.URL.Query().Get("locale"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, members)
}

// Create godoc
// @Summary Add a team member
// @Tags Content
// @Accept json
// @Produce json
// @Param body body requestresponse.TeamMemberRequest true "New member"
// @Success 201 {object} model.TeamMember
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/team [post]
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.TeamMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	member, err := h.teamService.Create(r.Context(), req.ToModel())
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusCreated, member)
}

// Update godoc
// @Summary Replace a team member
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Member id"
// @Param body body requestresponse.TeamMemberRequest true "New content"
// @Success 200 {object} model.TeamMember
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/team/{id} [put]
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.TeamMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	member, err := h.teamService.Update(r.Context(), chi.URLParam(r, "id"), req.ToModel())
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, member)
}

// Delete godoc
// @Summary Remove a team member
// @Tags Content
// @Param id path string true "Member id"
// @Success 204 "No Content"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/team/{id} [delete]
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.teamService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SolutionHandler serves the services/solutions section.
type SolutionHandler struct {
	solutionService *service.SolutionService
}

func NewSolutionHandler(solutionService *service.SolutionService) *SolutionHandler {
	return &SolutionHandler{solutionService: solutionService}
}

// ListPublic godoc
// @Summary Active solutions
// @Tags Content
// @Produce json
// @Param locale query string false "fr or en"
// @Success 200 {array} model.Solution
// @Router /api/v1/content/solutions [get]
func (h *SolutionHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	solutions, err := h.solutionService.ListPublic(r.Context(), requestLocale(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, solutions)
}

// ListAdmin godoc
// @Summary All solutions
// @Tags Content
// @Produce json
// @Success 200 {array} model.Solution
// @Security ApiKeyAuth
// @Router /api/v1/admin/solutions [get]
func (h *SolutionHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	solutions, err := h.solutionService.ListAdmin(r.Context(), r.URL.Query().Get("locale"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, solutions)
}

// Create godoc
// @Summary Create a solution
// @Tags Content
// @Accept json
// @Produce json
// @Param body body requestresponse.SolutionRequest true "New solution"
// @Success 201 {object} model.Solution
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/solutions [post]
func (h *SolutionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.SolutionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	solution, err := h.solutionService.Create(r.Context(), req.ToModel())
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusCreated, solution)
}

// Update godoc
// @Summary Replace a solution
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Solution id"
// @Param body body requestresponse.SolutionRequest true "New content"
// @Success 200 {object} model.Solution
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/solutions/{id} [put]
func (h *SolutionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.SolutionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	solution, err := h.solutionService.Update(r.Context(), chi.URLParam(r, "id"), req.ToModel())
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, solution)
}

// Delete godoc
// @Summary Delete a solution
// @Tags Content
// @Param id path string true "Solution id"
// @Success 204 "No Content"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/solutions/{id} [delete]
func (h *SolutionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.solutionService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
