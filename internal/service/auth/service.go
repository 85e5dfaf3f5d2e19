package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/hadir-hr/payroll-backend-go/internal/domain/auth"
	"github.com/hadir-hr/payroll-backend-go/internal/domain/user"
	"github.com/hadir-hr/payroll-backend-go/internal/pkg/jwt"
	jwtlib "github.com/lestrrat-go/jwx/v2/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Service implements username/password login with a short-lived access token
// and an HttpOnly refresh-token cookie. Refresh tokens are revoked on logout.
type Service struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewService(userRepo user.UserRepository, jwtService jwt.Service) *Service {
	return &Service{userRepo: userRepo, jwtService: jwtService}
}

// Login validates credentials and issues an access token plus a refresh
// token. Unknown usernames and bad passwords are indistinguishable to the
// caller.
func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, "", 0, err
	}

	userData, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	return s.issueTokens(userData)
}

// RefreshToken exchanges a valid, unrevoked refresh token for a fresh token
// pair. The presented refresh token is revoked so it cannot be replayed.
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (auth.TokenResponse, string, int64, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, "", 0, auth.ErrRefreshTokenRevoked
	}

	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidToken
	}
	if err := jwtlib.Validate(token); err != nil {
		return auth.TokenResponse{}, "", 0, auth.ErrTokenExpired
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidToken
	}
	if tokenType, ok := claims["type"].(string); !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.TokenResponse{}, "", 0, auth.ErrInvalidToken
	}

	userData, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, "", 0, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to load user: %w", err)
	}

	s.jwtService.RevokeToken(refreshToken)
	return s.issueTokens(userData)
}

// Logout revokes the refresh token. Revoking an already-revoked or garbage
// token is a no-op.
func (s *Service) Logout(_ context.Context, refreshToken string) {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
}

func (s *Service) issueTokens(userData user.User) (auth.TokenResponse, string, int64, error) {
	employeeCode := ""
	if userData.EmployeeCode != nil {
		employeeCode = *userData.EmployeeCode
	}

	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(
		userData.ID, userData.Username, employeeCode, userData.IsAdmin)
	if err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, "", 0, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		ExpiresAt:    accessExpiresAt,
		Username:     userData.Username,
		IsAdmin:      userData.IsAdmin,
		EmployeeCode: employeeCode,
	}, refreshToken, refreshExpiresAt, nil
}

// HashPassword is used by user provisioning.
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", fmt.Errorf("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
