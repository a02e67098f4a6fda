package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Elmamis69/jmares-reservas/internal/domain"
	userRepo "github.com/Elmamis69/jmares-reservas/internal/infra/storage/user"
	"github.com/Elmamis69/jmares-reservas/internal/service/auth/models"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const testSecret = "test-secret"

func newService(t *testing.T) (*Service, *domain.User) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3creta"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &domain.User{
		ID:           uuid.New(),
		Name:         "Admin",
		Email:        "admin@jmares.local",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	repo := &fakeUserRepo{users: map[string]*domain.User{admin.Email: admin}}
	return NewService(repo, testSecret, time.Hour, nopLogger{}), admin
}

func TestLogin_Success(t *testing.T) {
	svc, admin := newService(t)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "Admin@jmares.local", // case-insensitive
		Password: "s3creta",
	})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, resp.User.ID)
	assert.Equal(t, "ADMIN", resp.User.Role)

	// The token must carry the claims the middleware consumes.
	parsed, err := jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, admin.ID.String(), claims["sub"])
	assert.Equal(t, "ADMIN", claims["role"])
}

func TestLogin_Failures(t *testing.T) {
	svc, _ := newService(t)

	tests := []struct {
		name    string
		req     *models.LoginRequest
		wantErr error
	}{
		{"unknown email", &models.LoginRequest{Email: "nobody@jmares.local", Password: "s3creta"}, ErrInvalidCredentials},
		{"wrong password", &models.LoginRequest{Email: "admin@jmares.local", Password: "incorrecta"}, ErrInvalidCredentials},
		{"missing email", &models.LoginRequest{Password: "s3creta"}, ErrInvalidInput},
		{"missing password", &models.LoginRequest{Email: "admin@jmares.local"}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
