package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Om-mac/multiple-shop-analysis/internal/logger"
	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

// maxPasswordBytes is the longest input bcrypt hashes.
const maxPasswordBytes = 72

type Auth struct {
	userStore    model.UserStore
	sessionStore model.SessionStore
	tokenManager model.TokenManager
	sessionTTL   time.Duration
	validate     *validator.Validate
	recorder     Recorder
	logger       *logger.Logger
	now          func() time.Time
	hashCost     int
}

// AuthOption customises an Auth service.
type AuthOption func(*Auth)

// WithAuthRecorder sends login and registration events to r.
func WithAuthRecorder(r Recorder) AuthOption {
	return func(a *Auth) {
		a.recorder = r
	}
}

// WithAuthClock replaces time.Now, used for session timestamps and expiry checks.
func WithAuthClock(now func() time.Time) AuthOption {
	return func(a *Auth) {
		a.now = now
	}
}

// WithHashCost sets the bcrypt cost for new passwords.
func WithHashCost(cost int) AuthOption {
	return func(a *Auth) {
		a.hashCost = cost
	}
}

func NewAuth(
	userStore model.UserStore,
	sessionStore model.SessionStore,
	tokenManager model.TokenManager,
	sessionTTL time.Duration,
	logger *logger.Logger,
	opts ...AuthOption,
) *Auth {
	a := &Auth{
		userStore:    userStore,
		sessionStore: sessionStore,
		tokenManager: tokenManager,
		sessionTTL:   sessionTTL,
		validate:     newValidator(),
		recorder:     noopRecorder{},
		logger:       logger,
		now:          time.Now,
		hashCost:     bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Register creates a user with a bcrypt hash of the password.
func (a *Auth) Register(ctx context.Context, creds model.Credentials) (model.User, error) {
	creds.Username = strings.TrimSpace(creds.Username)

	a.logger.Debug("Auth service: registering user",
		"username", creds.Username)

	if err := a.validate.Struct(creds); err != nil {
		return model.User{}, validationError(err)
	}
	if len(creds.Password) > maxPasswordBytes {
		return model.User{}, model.NewValidationError("password", fmt.Sprintf("must be at most %d bytes", maxPasswordBytes))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), a.hashCost)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"username", creds.Username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Username:     creds.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, model.ErrDuplicateUsername) {
			a.logger.Info("Auth service: username already taken",
				"username", creds.Username)
			return model.User{}, err
		}
		a.logger.Error("Auth service: failed to create user",
			"username", creds.Username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.recorder.UserRegistered()
	a.logger.Info("Auth service: user registered",
		"username", user.Username,
		"user_id", user.ID)

	return user, nil
}

// Login checks the credentials, opens a session and returns its signed token.
func (a *Auth) Login(ctx context.Context, creds model.Credentials) (string, model.Session, error) {
	creds.Username = strings.TrimSpace(creds.Username)

	if err := a.validate.Struct(creds); err != nil {
		a.recorder.LoginAttempt(false)
		return "", model.Session{}, model.ErrInvalidCredentials
	}

	user, err := a.userStore.GetByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: login for unknown user",
				"username", creds.Username)
			a.recorder.LoginAttempt(false)
			return "", model.Session{}, model.ErrInvalidCredentials
		}
		a.logger.Error("Auth service: failed to get user by username",
			"username", creds.Username,
			"error", err.Error())
		return "", model.Session{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		a.logger.Info("Auth service: wrong password",
			"username", creds.Username)
		a.recorder.LoginAttempt(false)
		return "", model.Session{}, model.ErrInvalidCredentials
	}

	now := a.now()
	session := model.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionTTL),
	}

	if err := a.sessionStore.Create(ctx, session); err != nil {
		a.logger.Error("Auth service: failed to create session",
			"user_id", user.ID,
			"error", err.Error())
		return "", model.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := a.tokenManager.GenerateSessionToken(session)
	if err != nil {
		a.logger.Error("Auth service: failed to sign session token",
			"user_id", user.ID,
			"error", err.Error())
		return "", model.Session{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	a.recorder.LoginAttempt(true)
	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID,
		"session_id", session.ID)

	return token, session, nil
}

// Authenticate resolves a session token to the Principal it belongs to.
// Any problem with the token or its session yields ErrUnauthorized.
func (a *Auth) Authenticate(ctx context.Context, token string) (model.Principal, error) {
	if token == "" {
		return model.Principal{}, model.ErrUnauthorized
	}

	claims, err := a.tokenManager.ParseSessionToken(token)
	if err != nil {
		a.logger.Debug("Auth service: rejected session token",
			"error", err.Error())
		return model.Principal{}, model.ErrUnauthorized
	}

	session, err := a.sessionStore.GetByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Principal{}, model.ErrUnauthorized
		}
		a.logger.Error("Auth service: failed to get session",
			"session_id", claims.SessionID,
			"error", err.Error())
		return model.Principal{}, fmt.Errorf("failed to get session: %w", err)
	}

	if !session.Active(a.now()) || session.UserID != claims.UserID {
		a.logger.Debug("Auth service: session is no longer valid",
			"session_id", session.ID)
		return model.Principal{}, model.ErrUnauthorized
	}

	return model.Principal{
		UserID:    session.UserID,
		Username:  session.Username,
		SessionID: session.ID.String(),
	}, nil
}

// Logout revokes the session behind token. It never fails for a bad or stale token.
func (a *Auth) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := a.tokenManager.ParseSessionToken(token)
	if err != nil {
		return nil
	}

	err = a.sessionStore.Revoke(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		a.logger.Error("Auth service: failed to revoke session",
			"session_id", claims.SessionID,
			"error", err.Error())
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	a.recorder.SessionRevoked()
	a.logger.Info("Auth service: user logged out",
		"user_id", claims.UserID,
		"session_id", claims.SessionID)

	return nil
}
