package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-LessonService/internal/domain"
	userRepo "github.com/m04kA/SMC-LessonService/internal/infra/storage/user"
)

// UserRepository интерфейс чтения пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Resolver резолвит bearer-токен в principal.
// Ядро бронирований токены не разбирает — это его внешний коллаборатор.
type Resolver struct {
	users  UserRepository
	secret []byte
	logger Logger
}

// NewResolver создает новый резолвер principal
func NewResolver(users UserRepository, secret string, logger Logger) *Resolver {
	return &Resolver{
		users:  users,
		secret: []byte(secret),
		logger: logger,
	}
}

// Resolve проверяет подпись и срок токена (HS256, sub = user id),
// читает строку пользователя и возвращает principal.
func (r *Resolver) Resolve(ctx context.Context, token string) (*domain.Principal, error) {
	userID, err := r.parseSubject(token)
	if err != nil {
		r.logger.Warn("Resolve: token rejected: %v", err)
		return nil, ErrUnauthenticated
	}

	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			r.logger.Warn("Resolve: token subject user id=%d not found", userID)
			return nil, ErrUnauthenticated
		}
		r.logger.Error("Resolve: failed to load user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to load user: %v", ErrInternal, err)
	}

	if !user.IsActive {
		r.logger.Warn("Resolve: user id=%d is inactive", userID)
		return nil, ErrInactiveAccount
	}

	return &domain.Principal{
		UserID:   user.ID,
		Role:     user.Role,
		IsActive: user.IsActive,
	}, nil
}

// parseSubject валидирует токен и извлекает user id из claim sub
func (r *Resolver) parseSubject(token string) (int64, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return r.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("missing subject claim: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("invalid subject claim %q", subject)
	}

	return userID, nil
}

// NewToken выпускает HS256 токен для пользователя.
// Используется сервисом аутентификации и в тестах.
func NewToken(userID int64, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
