package auth

import (
	"context"
	"testing"

	"github.com/hadir-hr/payroll-backend-go/internal/domain/auth"
	"github.com/hadir-hr/payroll-backend-go/internal/domain/user"
	"github.com/hadir-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]user.User // keyed by username
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	if _, ok := r.users[u.Username]; ok {
		return user.User{}, user.ErrUsernameExists
	}
	r.users[u.Username] = u
	return u, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	u, ok := r.users[username]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func newTestService(t *testing.T) (*Service, jwt.Service) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	code := "1001"
	repo := &fakeUserRepo{users: map[string]user.User{
		"admin": {
			ID:           "user-1",
			Username:     "admin",
			PasswordHash: string(hash),
			IsAdmin:      true,
			EmployeeCode: &code,
		},
	}}
	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	return NewService(repo, jwtService), jwtService
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestService(t)

	resp, refreshToken, refreshExpiresAt, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "admin",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "admin", resp.Username)
	assert.True(t, resp.IsAdmin)
	assert.Equal(t, "1001", resp.EmployeeCode)
	assert.NotEmpty(t, refreshToken)
	assert.Greater(t, refreshExpiresAt, resp.ExpiresAt)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, _, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	// Unknown usernames look exactly like bad passwords.
	_, _, _, err = svc.Login(context.Background(), auth.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _ := newTestService(t)
	_, _, _, err := svc.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)
}

func TestRefreshToken_IssuesNewPair(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, refreshToken, _, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "correct-horse"})
	require.NoError(t, err)

	resp, newRefresh, _, err := svc.RefreshToken(ctx, refreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, newRefresh)

	// The presented refresh token was consumed.
	_, _, _, err = svc.RefreshToken(ctx, refreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	resp, _, _, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "correct-horse"})
	require.NoError(t, err)

	_, _, _, err = svc.RefreshToken(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshToken_Garbage(t *testing.T) {
	svc, _ := newTestService(t)
	_, _, _, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, refreshToken, _, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "correct-horse"})
	require.NoError(t, err)

	svc.Logout(ctx, refreshToken)

	_, _, _, err = svc.RefreshToken(ctx, refreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)

	// Logging out twice, or with an empty token, is harmless.
	svc.Logout(ctx, refreshToken)
	svc.Logout(ctx, "")
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("long-enough-password")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("long-enough-password")))

	_, err = HashPassword("short")
	assert.Error(t, err)
}
