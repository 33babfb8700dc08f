package http

import (
	"encoding/json"
	"net/http"

	"github.com/avkhamov/userhub/internal/logger"
	"github.com/avkhamov/userhub/internal/utils"
	"github.com/avkhamov/userhub/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondError(w, ErrInvalidJSONBody)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		respondError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Token: token.SignedString,
		User:  registeredUser.Public(),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondError(w, ErrInvalidJSONBody)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Msg("user login failed")
		respondError(w, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Token: token.SignedString,
		User:  foundUser.Public(),
	}, http.StatusOK)
}

// me returns the public projection of the authenticated identity attached by
// the auth middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetAuthUserFromContext(r.Context())
	if !ok {
		respondError(w, ErrNotAuthorized)
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

// logout acknowledges the client discarding its token. Tokens are stateless
// and expire on their own, so no server-side state changes here.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "Logged out successfully"}, http.StatusOK)
}
