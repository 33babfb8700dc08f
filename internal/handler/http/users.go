package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/avkhamov/userhub/internal/logger"
	"github.com/avkhamov/userhub/internal/utils"
	"github.com/avkhamov/userhub/models"
	"github.com/go-chi/chi/v5"
)

// targetUserID parses the {id} URL parameter of admin console routes.
func targetUserID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidUserID
	}
	return id, nil
}

// queryInt parses an integer query parameter, returning 0 when the value is
// absent or non-numeric so the service layer applies its default.
func queryInt(r *http.Request, name string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return value
}

// listUsers returns one page of the admin user listing.
// Page and limit default to 1 and 10 when unspecified or non-numeric.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page := queryInt(r, "page")
	limit := queryInt(r, "limit")

	pageResponse, err := h.services.UserService.ListUsers(ctx, page, limit)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, pageResponse, http.StatusOK)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := targetUserID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	updatedUser, err := h.services.UserService.UpdateStatus(ctx, id)
	if err != nil {
		log.Err(err).Int64("target_id", id).Msg("status update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{
		Message: "User status updated successfully",
		User:    updatedUser.Public(),
	}, http.StatusOK)
}

func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := targetUserID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req models.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondError(w, ErrInvalidJSONBody)
		return
	}

	updatedUser, err := h.services.UserService.UpdateRole(ctx, id, req.Role)
	if err != nil {
		log.Err(err).Int64("target_id", id).Msg("role update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{
		Message: "User role updated successfully",
		User:    updatedUser.Public(),
	}, http.StatusOK)
}

// updateProfile applies name/email changes to the caller's own record only;
// the target is always the identity attached by the auth middleware, never a
// client-supplied ID.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetAuthUserFromContext(ctx)
	if !ok {
		respondError(w, ErrNotAuthorized)
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondError(w, ErrInvalidJSONBody)
		return
	}

	updatedUser, err := h.services.UserService.UpdateProfile(ctx, user.UserID, req)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("profile update failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{
		Message: "Profile updated successfully",
		User:    updatedUser.Public(),
	}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetAuthUserFromContext(ctx)
	if !ok {
		respondError(w, ErrNotAuthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respondError(w, ErrInvalidJSONBody)
		return
	}

	if err := h.services.UserService.ChangePassword(ctx, user.UserID, req); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("password change failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Password updated successfully"}, http.StatusOK)
}
