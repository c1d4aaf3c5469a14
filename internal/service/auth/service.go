package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	userRepo "github.com/m04kA/CMG-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/CMG-AppointmentService/internal/service/auth/models"
)

// Service сервис аутентификации операторов панели.
// Токены подписываются HS256, срок жизни задаётся конфигом.
type Service struct {
	userRepo  UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, jwtSecret string, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login проверяет пару email/пароль и выдаёт подписанный токен.
// Несуществующий email и неверный пароль дают одинаковую ошибку,
// чтобы не раскрывать, какие операторы заведены в системе.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Login: attempt for email=%s", email)

	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.signToken(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		s.logger.Error("Login: failed to sign token for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - failed to sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: success for email=%s, role=%s", email, user.Role)

	return &models.LoginResponse{
		Token: token,
		User:  models.FromDomainUser(user),
	}, nil
}

// VerifyToken проверяет подпись и срок жизни токена, возвращает claims
func (s *Service) VerifyToken(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	}, jwt.WithExpirationRequired())

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return claims, nil
}

// signToken собирает и подписывает токен оператора
func (s *Service) signToken(userID, email, role string) (string, error) {
	now := time.Now()

	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
		Email: email,
		Role:  role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
