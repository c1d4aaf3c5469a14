package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/CMG-AppointmentService/internal/domain"
	userRepo "github.com/m04kA/CMG-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/CMG-AppointmentService/internal/service/auth/models"
)

type fakeUserRepo struct {
	users  map[string]*domain.User
	getErr error
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	user, ok := f.users[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const testSecret = "test-secret"

func newTestService(t *testing.T, password string) (*Service, *domain.User) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "secretaria@drgomez.com.ar",
		Name:         "Laura",
		PasswordHash: string(hash),
		Role:         domain.RoleSecretary,
	}

	repo := &fakeUserRepo{users: map[string]*domain.User{user.Email: user}}
	return NewService(repo, testSecret, 24*time.Hour, nopLogger{}), user
}

func TestLogin_Success(t *testing.T) {
	svc, user := newTestService(t, "secret123")

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "secretaria@drgomez.com.ar",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, "secretary", resp.User.Role)
}

func TestLogin_EmailIsCaseInsensitive(t *testing.T) {
	svc, _ := newTestService(t, "secret123")

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "  Secretaria@DrGomez.com.ar ",
		Password: "secret123",
	})

	assert.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t, "secret123")

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "secretaria@drgomez.com.ar",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	svc, _ := newTestService(t, "secret123")

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@drgomez.com.ar",
		Password: "secret123",
	})

	// Несуществующий email неотличим от неверного пароля
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc, _ := newTestService(t, "secret123")

	_, err := svc.Login(context.Background(), &models.LoginRequest{})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_RepoFailureIsInternal(t *testing.T) {
	repo := &fakeUserRepo{getErr: fmt.Errorf("connection refused")}
	svc := NewService(repo, testSecret, 24*time.Hour, nopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "secretaria@drgomez.com.ar",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestVerifyToken_Roundtrip(t *testing.T) {
	svc, user := newTestService(t, "secret123")

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "secretaria@drgomez.com.ar",
		Password: "secret123",
	})
	require.NoError(t, err)

	claims, err := svc.VerifyToken(resp.Token)

	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, "secretary", claims.Role)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	svc, _ := newTestService(t, "secret123")

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "secretaria@drgomez.com.ar",
		Password: "secret123",
	})
	require.NoError(t, err)

	other := NewService(&fakeUserRepo{}, "another-secret", 24*time.Hour, nopLogger{})

	_, err = other.VerifyToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Expired(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "secretaria@drgomez.com.ar",
		PasswordHash: string(hash),
		Role:         domain.RoleSecretary,
	}
	repo := &fakeUserRepo{users: map[string]*domain.User{user.Email: user}}
	svc := NewService(repo, testSecret, -time.Hour, nopLogger{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "secretaria@drgomez.com.ar",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.VerifyToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Garbage(t *testing.T) {
	svc, _ := newTestService(t, "secret123")

	_, err := svc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
