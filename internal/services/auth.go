package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/coffeetime/internal/auth"
	"github.com/dmitrijs2005/coffeetime/internal/common"
	"github.com/dmitrijs2005/coffeetime/internal/config"
	"github.com/dmitrijs2005/coffeetime/internal/cryptox"
	"github.com/dmitrijs2005/coffeetime/internal/logging"
	"github.com/dmitrijs2005/coffeetime/internal/models"
	"github.com/dmitrijs2005/coffeetime/internal/repositories/repomanager"
	"github.com/dmitrijs2005/coffeetime/internal/repositories/users"
)

// Session identifies the user a token was issued to.
type Session struct {
	Token       string
	UserID      int64
	Username    string
	DisplayName string
	ExpiresAt   time.Time
}

// Name returns the display name, falling back to the username.
func (s *Session) Name() string {
	return models.User{Username: s.Username, DisplayName: s.DisplayName}.Name()
}

// Authenticator validates session tokens.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*Session, error)
}

// AuthService handles registration, login and session tokens.
// It is safe for concurrent use.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      cryptox.PasswordHasher
	logger      logging.Logger

	jwtSecret  []byte
	sessionTTL time.Duration

	mu      sync.Mutex
	revoked map[string]time.Time // token id -> expiry
}

// NewAuthService constructs an AuthService. An empty cfg.SecretKey is
// replaced by a random per-process key, so tokens do not survive a restart.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, hasher cryptox.PasswordHasher,
	cfg *config.Config, logger logging.Logger) *AuthService {

	secret := []byte(cfg.SecretKey)
	if len(secret) == 0 {
		secret = common.GenerateRandByteArray(32)
	}

	return &AuthService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		logger:      logger.With("component", "auth"),
		jwtSecret:   secret,
		sessionTTL:  cfg.SessionTTL,
		revoked:     make(map[string]time.Time),
	}
}

// Register creates an account. Username is trimmed; the password is used as
// given.
func (s *AuthService) Register(ctx context.Context, username, password, displayName string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", common.ErrorValidation)
	}

	hash, err := s.hasher.Hash([]byte(password))
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return nil, err
		}
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		DisplayName:  strings.TrimSpace(displayName),
	}
	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		s.logger.Error(ctx, "error creating user", "username", username, "error", err)
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "username", u.Username, "user_id", u.ID)
	return u, nil
}

// Login verifies credentials and issues a session. Unknown users and wrong
// passwords both yield common.ErrorUnauthorized.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", common.ErrorValidation)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Debug(ctx, "login for unknown user", "username", username)
			return nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "error loading user", "username", username, "error", err)
		return nil, common.ErrorInternal
	}

	ok, err := s.hasher.Verify(user.PasswordHash, []byte(password))
	if err != nil {
		s.logger.Error(ctx, "stored password hash is unreadable", "user_id", user.ID, "error", err)
		return nil, common.ErrorInternal
	}
	if !ok {
		s.logger.Debug(ctx, "wrong password", "user_id", user.ID)
		return nil, common.ErrorUnauthorized
	}

	if s.hasher.NeedsRehash(user.PasswordHash) {
		s.upgradeHash(ctx, repo, user, password)
	}

	token, claims, err := auth.GenerateToken(user, s.jwtSecret, s.sessionTTL)
	if err != nil {
		s.logger.Error(ctx, "error signing token", "error", err)
		return nil, common.ErrorInternal
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)
	return &Session{
		Token:       token,
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// upgradeHash replaces a legacy digest after a successful login. Failures
// are logged and leave the old digest in place.
func (s *AuthService) upgradeHash(ctx context.Context, repo users.Repository, user *models.User, password string) {
	hash, err := s.hasher.Hash([]byte(password))
	if err == nil {
		err = repo.UpdatePasswordHash(ctx, user.ID, hash)
	}
	if err != nil {
		s.logger.Warn(ctx, "password hash upgrade failed", "user_id", user.ID, "error", err)
		return
	}
	user.PasswordHash = hash
	s.logger.Info(ctx, "password hash upgraded", "user_id", user.ID)
}

// Authenticate validates token and returns its session. Every failure wraps
// common.ErrorUnauthorized; expired tokens also match common.ErrTokenExpired.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, fmt.Errorf("no session: %w", common.ErrorUnauthorized)
	}

	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}
	if s.isRevoked(claims.ID) {
		return nil, fmt.Errorf("session ended: %w", common.ErrorUnauthorized)
	}

	return &Session{
		Token:       token,
		UserID:      claims.UserID,
		Username:    claims.Username,
		DisplayName: claims.DisplayName,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

// Logout revokes token. Logging out with an already expired token is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil
		}
		return fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, exp := range s.revoked {
		if exp.Before(now) {
			delete(s.revoked, id)
		}
	}
	s.revoked[claims.ID] = claims.ExpiresAt.Time

	s.logger.Info(ctx, "user logged out", "user_id", claims.UserID)
	return nil
}

func (s *AuthService) isRevoked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revoked[id]
	return ok
}
