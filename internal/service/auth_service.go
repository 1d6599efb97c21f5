package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"storefront-service/internal/dto"
	"storefront-service/internal/model"
	"storefront-service/internal/repository"
	"storefront-service/internal/token"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	Save(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByProvider(ctx context.Context, provider, providerID string) (*model.User, error)
}

type AuthService struct {
	users  UserRepository
	tokens *token.Manager
}

func NewAuthService(users UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a local account and returns it with a signed credential.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	return s.withToken(u)
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*model.User, string, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidLogin
		}
		return nil, "", err
	}

	// OAuth-only accounts have no password to check against.
	if u.PasswordHash == "" {
		return nil, "", ErrInvalidLogin
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", ErrInvalidLogin
	}

	return s.withToken(u)
}

// OAuthLogin upserts the account asserted by the provider callback: an
// existing provider link wins, then an email match gets linked, and a brand
// new passwordless account is created otherwise.
func (s *AuthService) OAuthLogin(ctx context.Context, req dto.OAuthRequest) (*model.User, string, error) {
	u, err := s.users.FindByProvider(ctx, req.Provider, req.ProviderID)
	if err == nil {
		return s.withToken(u)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	u, err = s.users.FindByEmail(ctx, req.Email)
	if err == nil {
		u.Provider = req.Provider
		u.ProviderID = req.ProviderID
		if err := s.users.Save(ctx, u); err != nil {
			return nil, "", err
		}
		return s.withToken(u)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	u = &model.User{
		Name:       req.Name,
		Email:      req.Email,
		Provider:   req.Provider,
		ProviderID: req.ProviderID,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}
	return s.withToken(u)
}

func (s *AuthService) Me(ctx context.Context, userID string) (*model.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) withToken(u *model.User) (*model.User, string, error) {
	signed, err := s.tokens.Issue(u)
	if err != nil {
		return nil, "", err
	}
	return u, signed, nil
}
