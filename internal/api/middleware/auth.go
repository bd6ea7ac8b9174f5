package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-LessonService/internal/api/handlers"
	"github.com/m04kA/SMC-LessonService/internal/auth"
	"github.com/m04kA/SMC-LessonService/internal/domain"
)

const (
	msgMissingToken    = "требуется заголовок Authorization: Bearer <token>"
	msgInvalidToken    = "некорректный или просроченный токен"
	msgInactiveAccount = "аккаунт деактивирован"
)

type principalKey struct{}

// PrincipalResolver интерфейс резолвера principal
type PrincipalResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Principal, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет bearer-токен и кладёт principal в контекст запроса.
// Handlers за этим middleware достают его через PrincipalFromContext.
func Auth(resolver PrincipalResolver, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			principal, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrUnauthenticated):
					handlers.RespondUnauthorized(w, msgInvalidToken)
				case errors.Is(err, auth.ErrInactiveAccount):
					handlers.RespondForbidden(w, msgInactiveAccount)
				default:
					logger.Error("Auth: failed to resolve principal: %v", err)
					handlers.RespondInternalError(w, GetRequestID(r.Context()))
				}
				return
			}

			ctx := context.WithValue(r.Context(), principalKey{}, *principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextWithPrincipal кладет principal в контекст, минуя разбор токена.
// Нужен внутренним вызовам и тестам handlers.
func ContextWithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext возвращает principal аутентифицированного запроса
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}

// bearerToken извлекает токен из заголовка Authorization
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
