package handler

import (
	"net/http"

	"multipoles-backend/internal/locale"
	"multipoles-backend/internal/model/requestresponse"
	"multipoles-backend/internal/ports"
	"multipoles-backend/internal/security"
	"multipoles-backend/internal/util"
)

type AuthenticationHandler struct {
	authService ports.AuthenticationService
}

func NewAuthenticationHandler(authService ports.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{authService: authService}
}

// Login godoc
// @Summary Authenticate a dashboard user
// @Description Exchanges email and password for an access/refresh token pair
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Credentials"
// @Success 200 {object} requestresponse.LoginResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password, r.UserAgent(), clientIP(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.LoginResponse{
		Tokens: result.Tokens,
		User:   result.User,
	})
}

// Refresh godoc
// @Summary Refresh the access token
// @Description Issues a new access token against a valid refresh token. The refresh token itself is returned unchanged.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} requestresponse.RefreshTokenResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/v1/auth/refresh [post]
func (h *AuthenticationHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RefreshTokenRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	tokens, err := h.authService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		respondError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.RefreshTokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// Logout godoc
// @Summary End the current session
// @Description Revokes the presented refresh token. Always answers 200, a bad token has nothing left to revoke.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} requestresponse.MessageResponse
// @Router /api/v1/auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RefreshTokenRequest
	if err := decodeJSON(r, &req); err == nil {
		h.authService.Logout(r.Context(), req.RefreshToken)
	}

	loc := locale.Pick(r.Header.Get("Accept-Language"))
	util.WriteJSON(w, http.StatusOK, requestresponse.MessageResponse{
		Message: locale.T(loc, "auth", "loggedOut"),
	})
}

// Me godoc
// @Summary Current user profile
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} model.PublicUser
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /api/v1/auth/me [get]
func (h *AuthenticationHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, err := security.ClaimsFromContext(r.Context())
	if err != nil {
		loc := locale.Pick(r.Header.Get("Accept-Language"))
		util.HandleError(w, locale.T(loc, "auth", "unauthorized"), http.StatusUnauthorized)
		return
	}

	user, err := h.authService.CurrentUser(r.Context(), claims.Subject)
	if err != nil {
		respondError(w, r, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, user)
}
