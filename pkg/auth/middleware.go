package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/fundraiser/pkg/utils"
)

type ContextKey string

const AccountKey ContextKey = "account"

// AuthMiddleware resolves the caller identity from the bearer token.
func AuthMiddleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), AccountKey, claims.Account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func AccountFromContext(ctx context.Context) string {
	account, _ := ctx.Value(AccountKey).(string)
	return account
}
