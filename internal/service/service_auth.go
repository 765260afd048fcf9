package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/tasky/internal/config"
	"github.com/MKhiriev/tasky/internal/logger"
	"github.com/MKhiriev/tasky/internal/store"
	"github.com/MKhiriev/tasky/internal/utils"
	"github.com/MKhiriev/tasky/models"
	zxcvbn "github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

// minPasswordScore is the minimum zxcvbn estimated-strength score (0-4)
// a password must reach to be accepted at registration.
const minPasswordScore = 3

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, profile
// maintenance, and JWT token lifecycle using a UserRepository for
// persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the bcrypt work factor applied when hashing passwords.
	bcryptCost int

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

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// The flow mirrors the registration pipeline of the HTTP surface: required
// fields first, then the uniqueness pre-check, then the strength gate, and
// only then the expensive bcrypt hash.
//
// Returns the persisted user (with server-assigned ID and timestamps) or:
//   - ErrInvalidDataProvided (wrapped, naming the missing field).
//   - store.ErrUserAlreadyExists if the email or userName is taken.
//   - ErrWeakPassword if the password scores below the strength threshold.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateRegisterRequest(req); err != nil {
		log.Err(err).Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, err
	}

	for _, login := range []string{req.Email, req.UserName} {
		_, err := a.userRepository.FindUserByEmailOrUserName(ctx, login)
		if err == nil {
			log.Warn().Str("login", login).Msg("email or username already in use")
			return models.User{}, store.ErrUserAlreadyExists
		}
		if !errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("uniqueness check failed: %w", err)
		}
	}

	if zxcvbn.PasswordStrength(req.Password, nil).Score < minPasswordScore {
		log.Warn().Str("email", req.Email).Msg("weak password rejected")
		return models.User{}, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		UserName:     req.UserName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Avatar:       req.Avatar,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks the account up by email or user name and compares the supplied
// password against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if login or password is empty.
//   - A wrapped storage error if the lookup fails (e.g. store.ErrUserNotFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		log.Error().Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmailOrUserName(ctx, login)
	if err != nil {
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Warn().
			Str("id", foundUser.ID).
			Str("login", login).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// GetProfile returns the current public profile state for userID.
//
// The decoded token only proves identity; profile reads always go back to the
// store so stale embedded claims are never served.
func (a *authService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("profile lookup failed")
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies the non-nil mutable profile fields and returns the
// refreshed record.
//
// Returns ErrInvalidDataProvided when the update carries no fields.
func (a *authService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		log.Error().Str("user_id", userID).Msg("empty profile update provided")
		return models.User{}, ErrInvalidDataProvided
	}

	updatedUser, err := a.userRepository.UpdateProfile(ctx, userID, update)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updatedUser, nil
}

// ChangePassword verifies the old password against the stored hash before
// replacing it with the hash of the new one.
//
// Returns:
//   - ErrInvalidDataProvided if either password is empty.
//   - ErrWrongPassword if the old password does not match.
//
// Tokens issued before the change remain valid until they expire.
func (a *authService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if oldPassword == "" || newPassword == "" {
		log.Error().Str("user_id", userID).Msg("invalid password change data provided")
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		log.Warn().Str("user_id", userID).Msg("old password mismatch")
		return ErrWrongPassword
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), a.bcryptCost)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, userID, string(newHash)); err != nil {
		log.Err(err).Str("user_id", userID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// validateRegisterRequest checks that every required registration field is
// present, reporting the first missing one by name.
func validateRegisterRequest(req models.RegisterRequest) error {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", req.FirstName},
		{"lastName", req.LastName},
		{"email", req.Email},
		{"userName", req.UserName},
		{"password", req.Password},
	}

	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidDataProvided, field.name)
		}
	}

	return nil
}
