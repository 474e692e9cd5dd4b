package middleware

import (
	"net/http"

	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
	"github.com/gajipro/gajipro-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func requireRole(role user.Role, denied error) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, denied)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, denied)
				return
			}

			if user.Role(roleStr) != role {
				response.HandleError(w, denied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireOwner requires the bos role
func RequireOwner(next http.Handler) http.Handler {
	return requireRole(user.RoleOwner, user.ErrOwnerAccessRequired)(next)
}

// RequireWorker requires the karyawan role
func RequireWorker(next http.Handler) http.Handler {
	return requireRole(user.RoleWorker, user.ErrWorkerAccessRequired)(next)
}
