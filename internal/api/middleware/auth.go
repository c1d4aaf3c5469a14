package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/CMG-AppointmentService/internal/api/handlers"
	authModels "github.com/m04kA/CMG-AppointmentService/internal/service/auth/models"
)

const (
	msgMissingToken = "se requiere autenticación"
	msgInvalidToken = "token inválido o expirado"
	msgForbidden    = "permisos insuficientes"
)

type claimsKey struct{}

// TokenVerifier интерфейс проверки токена оператора
type TokenVerifier interface {
	VerifyToken(tokenString string) (*authModels.Claims, error)
}

// Auth проверяет Bearer токен и кладет claims оператора в контекст запроса
func Auth(verifier TokenVerifier) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := verifier.VerifyToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пропускает только операторов с одной из перечисленных ролей.
// Вешается после Auth.
func RequireRole(roles ...string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			handlers.RespondForbidden(w, msgForbidden)
		})
	}
}

// ClaimsFromContext возвращает claims оператора, если запрос прошёл Auth
func ClaimsFromContext(ctx context.Context) (*authModels.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*authModels.Claims)
	return claims, ok
}
