package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avkhamov/userhub/internal/config"
	"github.com/avkhamov/userhub/internal/logger"
	"github.com/avkhamov/userhub/internal/store"
	"github.com/avkhamov/userhub/internal/utils"
	"github.com/avkhamov/userhub/internal/validators"
	"github.com/avkhamov/userhub/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Validation, in order: all four fields present, email shape, password
// strength rule (length ≥ 6, one uppercase, one digit), password equals its
// confirmation. The password is then bcrypt-hashed and the account persisted
// with role "user" and status "active".
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrAllFieldsRequired / ErrInvalidEmailFormat / a validators sentinel /
//     ErrPasswordsDoNotMatch on validation failure.
//   - ErrEmailAlreadyRegistered when the email is already taken.
//   - A wrapped storage error on any other repository failure.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.FullName == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		log.Error().Str("email", req.Email).Msg("registration with missing fields")
		return models.User{}, ErrAllFieldsRequired
	}

	if !validators.IsValidEmail(req.Email) {
		log.Error().Str("email", req.Email).Msg("registration with malformed email")
		return models.User{}, ErrInvalidEmailFormat
	}

	if err := validators.ValidatePasswordStrength(req.Password); err != nil {
		log.Err(err).Msg("registration with weak password")
		return models.User{}, err
	}

	if req.Password != req.ConfirmPassword {
		return models.User{}, ErrPasswordsDoNotMatch
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
		Status:       models.StatusActive,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailAlreadyRegistered
		}
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// A missing account and a mismatched password both return
// ErrInvalidCredentials so the response never reveals whether the email is
// registered. An inactive account is rejected with ErrAccountInactive before
// the password is compared, matching the account-console semantics: the
// lockout message is the point, not a credential check.
//
// On success the user's last-login timestamp is updated; a failure of that
// bookkeeping write is logged but does not fail the login.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		return models.User{}, ErrEmailPasswordRequired
	}

	if !validators.IsValidEmail(req.Email) {
		return models.User{}, ErrInvalidEmailFormat
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("email", req.Email).Msg("login for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if foundUser.Status == models.StatusInactive {
		log.Error().Int64("id", foundUser.UserID).Msg("login for inactive account")
		return models.User{}, ErrAccountInactive
	}

	if !utils.CheckPassword(foundUser.PasswordHash, req.Password) {
		log.Error().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	now := time.Now()
	if err := a.userRepository.UpdateLastLogin(ctx, foundUser.UserID, now); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("updating last login failed")
	} else {
		foundUser.LastLogin = &now
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim and the user's current role as
// the "role" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the expiry, and the issuer claim. Any validation failure (expired, wrong
// issuer, malformed, bad signature) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers cannot distinguish — and
// therefore cannot leak — the reason a token was rejected.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
