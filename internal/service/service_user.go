package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avkhamov/userhub/internal/logger"
	"github.com/avkhamov/userhub/internal/store"
	"github.com/avkhamov/userhub/internal/utils"
	"github.com/avkhamov/userhub/internal/validators"
	"github.com/avkhamov/userhub/models"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUser loads a user record by ID. Passes store.ErrNoUserWasFound through
// unchanged so callers can map it to 404 (or 401 in the auth middleware).
func (u *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return u.userRepository.FindUserByID(ctx, userID)
}

// UpdateProfile applies name and/or email changes to the caller's own record.
//
// At least one field must be present. A supplied email must be well-formed
// and unique across all other accounts; the unique index surfaces a
// collision as ErrEmailAlreadyInUse without a read-check race.
func (u *userService) UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.FullName == "" && req.Email == "" {
		return models.User{}, ErrProfileFieldRequired
	}

	if req.Email != "" && !validators.IsValidEmail(req.Email) {
		return models.User{}, ErrInvalidEmailFormat
	}

	updated, err := u.userRepository.UpdateProfile(ctx, userID, req.FullName, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailAlreadyInUse
		}
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, err
		}
		log.Err(err).Int64("id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updated, nil
}

// ChangePassword verifies the caller's current password and replaces the
// stored hash with a hash of the new one.
//
// Validation, in order: all three fields present, new password equals its
// confirmation, new password at least 6 characters. The old password is then
// compared against the stored hash; a mismatch fails with
// ErrWrongOldPassword without touching the record.
func (u *userService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if req.OldPassword == "" || req.NewPassword == "" || req.ConfirmPassword == "" {
		return ErrAllFieldsRequired
	}

	if req.NewPassword != req.ConfirmPassword {
		return ErrNewPasswordsDoNotMatch
	}

	if len(req.NewPassword) < 6 {
		return validators.ErrPasswordTooShort
	}

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, req.OldPassword) {
		log.Error().Int64("id", userID).Msg("wrong old password")
		return ErrWrongOldPassword
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	return u.userRepository.UpdatePassword(ctx, userID, passwordHash)
}

// UpdateStatus toggles the target user's status between active and inactive
// and returns the updated record. Toggling twice restores the original
// status.
func (u *userService) UpdateStatus(ctx context.Context, targetID int64) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, targetID)
	if err != nil {
		return models.User{}, err
	}

	return u.userRepository.UpdateStatus(ctx, targetID, user.Status.Toggle())
}

// UpdateRole sets the target user's role. The role must be a member of the
// closed {admin, user} set; anything else fails with ErrInvalidRole before
// the store is consulted.
//
// The change affects only future token issuance: tokens already in
// circulation keep their embedded role claim until they expire.
func (u *userService) UpdateRole(ctx context.Context, targetID int64, role models.Role) (models.User, error) {
	if !role.Valid() {
		return models.User{}, ErrInvalidRole
	}

	return u.userRepository.UpdateRole(ctx, targetID, role)
}

// ListUsers returns one page of public user projections.
//
// Page and limit fall back to 1 and 10 when non-positive (the transport
// layer also defaults non-numeric query values to zero). The page is
// computed as skip = (page-1)*limit; the total page count is
// ceil(total/limit).
func (u *userService) ListUsers(ctx context.Context, page, limit int) (models.UserPageResponse, error) {
	log := logger.FromContext(ctx)

	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	offset := (page - 1) * limit

	users, err := u.userRepository.ListUsers(ctx, limit, offset)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		return models.UserPageResponse{}, fmt.Errorf("listing users failed: %w", err)
	}

	total, err := u.userRepository.CountUsers(ctx)
	if err != nil {
		log.Err(err).Msg("counting users failed")
		return models.UserPageResponse{}, fmt.Errorf("counting users failed: %w", err)
	}

	publicUsers := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		publicUsers = append(publicUsers, user.Public())
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return models.UserPageResponse{
		Success:    true,
		Users:      publicUsers,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}
