package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hardware-store/models"
	"hardware-store/repositories"
	"hardware-store/utils"
)

var (
	ErrCredentialsRequired = errors.New("email and password are required")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid session token")
)

type seedUser struct {
	ID       string
	Email    string
	Password string
	Name     string
	Role     models.Role
}

var defaultUsers = []seedUser{
	{ID: "1", Email: "admin@test.com", Password: "admin123", Name: "Admin User", Role: models.RoleAdmin},
	{ID: "2", Email: "user@test.com", Password: "user123", Name: "Regular User", Role: models.RoleUser},
}

// DemoAdmin is the session reported when the dev bypass is on and no token
// is present.
func DemoAdmin() *models.User {
	u := defaultUsers[0]
	return &models.User{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

type AuthService struct {
	users  repositories.UserRepository
	secret string
	expiry time.Duration
	bypass bool
}

func NewAuthService(users repositories.UserRepository, secret string, expiry time.Duration, bypass bool) *AuthService {
	return &AuthService{users: users, secret: secret, expiry: expiry, bypass: bypass}
}

func (s *AuthService) TokenTTL() time.Duration {
	return s.expiry
}

// SeedUsers makes sure the default admin and customer accounts exist.
func (s *AuthService) SeedUsers(ctx context.Context) error {
	for _, u := range defaultUsers {
		hashed, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		err = s.users.Create(ctx, &models.Account{
			ID:       u.ID,
			Email:    u.Email,
			Password: hashed,
			Name:     u.Name,
			Role:     u.Role,
		})
		if err != nil && !errors.Is(err, repositories.ErrDuplicateEmail) {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}
	return nil
}

// Login checks the credentials and returns the user with a signed session
// token. With the dev bypass on it always signs in the demo admin.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if s.bypass {
		user := DemoAdmin()
		token, err := s.issue(user)
		return user, token, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", ErrCredentialsRequired
	}

	account, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !utils.VerifyPassword(account.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	user := account.User()
	token, err := s.issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) issue(user *models.User) (string, error) {
	token, err := utils.GenerateToken(s.secret, s.expiry, user)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Resolve turns the session token into its user. An empty token yields a
// nil user and no error; an invalid one yields ErrInvalidToken so the
// caller can clear it.
func (s *AuthService) Resolve(token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	claims, err := utils.ValidateToken(s.secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims.User(), nil
}

// Me is Resolve for the session endpoint: with the dev bypass on, a missing
// or invalid token reports the demo admin instead.
func (s *AuthService) Me(token string) (*models.User, error) {
	user, err := s.Resolve(token)
	if user == nil && s.bypass {
		return DemoAdmin(), nil
	}
	return user, err
}

func (s *AuthService) Bypass() bool {
	return s.bypass
}
