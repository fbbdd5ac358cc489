package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/folio/internal/common"
	"github.com/dmitrijs2005/folio/internal/cryptox"
	"github.com/dmitrijs2005/folio/internal/logging"
	"github.com/dmitrijs2005/folio/internal/server/auth"
	"github.com/dmitrijs2005/folio/internal/server/config"
	"github.com/dmitrijs2005/folio/internal/server/models"
	"github.com/dmitrijs2005/folio/internal/server/repositories/repomanager"
)

// Messages returned by the auth gate.
const (
	MsgNoToken      = "Not authorized, no token"
	MsgTokenFailed  = "Not authorized, token failed"
	MsgUserNotFound = "Not authorized, user not found"

	msgInvalidCredentials = "Invalid credentials"
)

// Session is what a successful login or registration hands back.
type Session struct {
	ID       string
	UserName string
	Token    string
}

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	issuer      *auth.Issuer
	logger      logging.Logger
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		issuer:      auth.NewIssuer(cfg.SecretKey, cfg.TokenValidityDuration),
		logger:      logger.With("module", "users"),
	}
}

// Login checks the credentials and issues a token. Unknown users and wrong
// passwords fail identically and cost one bcrypt comparison each.
func (s *UserService) Login(ctx context.Context, userName, password string) (*Session, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			cryptox.BurnCompare(password)
			return nil, common.Unauthorized(msgInvalidCredentials)
		}
		return nil, err
	}

	if !cryptox.CheckPassword(user.PasswordHash, password) {
		return nil, common.Unauthorized(msgInvalidCredentials)
	}

	return s.session(user)
}

// Register creates another admin account and logs it in.
func (s *UserService) Register(ctx context.Context, userName, password string) (*Session, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" || password == "" {
		return nil, common.Validation("Please provide username and password")
	}

	user, err := s.create(ctx, userName, password)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.Validation("User already exists")
		}
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return s.session(user)
}

// EnsureAdmin creates the seed account unless a user with that name exists.
// Empty credentials disable seeding. A concurrent seed by another instance
// surfaces as a conflict and is treated as success.
func (s *UserService) EnsureAdmin(ctx context.Context, userName, password string) error {
	if userName == "" || password == "" {
		return nil
	}

	_, err := s.repomanager.Users(s.db).GetByUserName(ctx, userName)
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	user, err := s.create(ctx, userName, password)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil
		}
		return err
	}

	s.logger.Info(ctx, "admin user seeded", "username", user.UserName)
	return nil
}

// Authenticate resolves a bearer token to a live user.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, common.Unauthorized(MsgNoToken)
	}

	userID, err := s.issuer.Verify(token)
	if err != nil {
		return nil, common.Unauthorized(MsgTokenFailed)
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Unauthorized(MsgUserNotFound)
		}
		return nil, err
	}

	return user, nil
}

func (s *UserService) create(ctx context.Context, userName, password string) (*models.User, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return s.repomanager.Users(s.db).Create(ctx, &models.User{UserName: userName, PasswordHash: hash})
}

func (s *UserService) session(user *models.User) (*Session, error) {
	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{ID: user.ID, UserName: user.UserName, Token: token}, nil
}
