package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
	"github.com/cashflowhq/cash-flow-api/internal/domain/repository"
	"github.com/cashflowhq/cash-flow-api/pkg/apperrors"
	"github.com/cashflowhq/cash-flow-api/pkg/helpers"
)

// ErrInvalidCredentials covers unknown email and password mismatch alike so
// login failures never reveal which of the two was wrong.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)

// TokenPair is an access/refresh token pair with expiry metadata.
type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

// Service implements registration, login and token refresh.
type Service struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *Service {
	return &Service{Users: users, JWT: jwt, Logger: logger}
}

// Register creates an account with the default USER role and signs the new
// user in. The email must not be in use.
func (s *Service) Register(ctx context.Context, name, email, password string) (*entity.User, TokenPair, error) {
	existing, err := s.Users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, TokenPair{}, err
	}
	if existing != nil {
		return nil, TokenPair{}, apperrors.Conflict("email already registered")
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	u := &entity.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     entity.RoleUser,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, TokenPair{}, err
	}

	pair, err := s.issueTokens(u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// Login validates email/password and issues a token pair.
func (s *Service) Login(ctx context.Context, email, password string) (*entity.User, TokenPair, error) {
	u, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email stays indistinguishable from a bad password, but a
		// store fault is a server error, never an invalid-credentials reply.
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, TokenPair{}, ErrInvalidCredentials
		}
		return nil, TokenPair{}, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// Refresh rotates the token pair for a valid refresh token. The user is
// re-read so a role change takes effect on the next rotation.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	u, err := s.Users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, err
	}
	return s.issueTokens(u)
}

func (s *Service) issueTokens(u *entity.User) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate refresh token failed")
		}
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:        access,
		AccessTokenExpiry:  aexp,
		RefreshToken:       refresh,
		RefreshTokenExpiry: rexp,
	}, nil
}
