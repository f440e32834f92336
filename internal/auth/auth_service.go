package auth

import (
	"context"

	autherrors "go-payslip/internal/auth/errors"
	"go-payslip/internal/auth/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (Tokens, AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (Tokens, AuthResponse, error)
	GetMe(ctx context.Context, userID string) (AuthResponse, error)
}

type service struct {
	repo   Repository
	tokens *token.Manager
	cost   int
	logger *zap.Logger
}

func NewService(repo Repository, tokens *token.Manager, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, tokens: tokens, cost: bcrypt.DefaultCost, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return AuthResponse{}, err
	}

	user := &User{
		ID:       uuid.New(),
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hashed),
		IsActive: true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Warn("register user failed", zap.Error(err))
		return AuthResponse{}, mapCreateError(err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID.String()))
	return toResponse(user), nil
}

func (s *service) Login(ctx context.Context, email, password string) (Tokens, AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return Tokens{}, AuthResponse{}, mapLookupError(err, autherrors.ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return Tokens{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return Tokens{}, AuthResponse{}, autherrors.ErrUserInactive
	}

	tokens, err := s.issue(user.ID.String())
	if err != nil {
		return Tokens{}, AuthResponse{}, err
	}
	return tokens, toResponse(user), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (Tokens, AuthResponse, error) {
	userID, err := s.tokens.Parse(refreshToken, token.KindRefresh)
	if err != nil {
		return Tokens{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	user, err := s.lookup(ctx, userID)
	if err != nil {
		return Tokens{}, AuthResponse{}, err
	}

	tokens, err := s.issue(user.ID.String())
	if err != nil {
		return Tokens{}, AuthResponse{}, err
	}
	return tokens, toResponse(user), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (AuthResponse, error) {
	user, err := s.lookup(ctx, userID)
	if err != nil {
		return AuthResponse{}, err
	}
	return toResponse(user), nil
}

func (s *service) lookup(ctx context.Context, userID string) (*User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidToken
	}
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapLookupError(err, autherrors.ErrUserNotFound)
	}
	if !user.IsActive {
		return nil, autherrors.ErrUserInactive
	}
	return user, nil
}

func (s *service) issue(userID string) (Tokens, error) {
	access, err := s.tokens.Issue(userID, token.KindAccess)
	if err != nil {
		return Tokens{}, autherrors.ErrTokenGenerationFailed
	}
	refresh, err := s.tokens.Issue(userID, token.KindRefresh)
	if err != nil {
		return Tokens{}, autherrors.ErrTokenGenerationFailed
	}
	return Tokens{AccessToken: access, RefreshToken: refresh}, nil
}
