package http

import (
	"net/http"
	"strconv"

	"github.com/gajipro/gajipro-backend-go/internal/domain/auth"
	"github.com/gajipro/gajipro-backend-go/internal/domain/user"
	"github.com/gajipro/gajipro-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

// actorFromRequest builds the caller from the verified access token claims.
func actorFromRequest(r *http.Request) (user.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.Actor{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.Actor{}, auth.ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok || !user.Role(role).IsValid() {
		return user.Actor{}, auth.ErrInvalidToken
	}

	return user.Actor{UserID: userID, Role: user.Role(role)}, nil
}

// pathID reads the {id} URL parameter and rejects anything that is not a UUIDv7.
func pathID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		return "", validator.ValidationErrors{{
			Field:   "id",
			Message: "id must be a valid id",
		}}
	}
	return id, nil
}

// pageParam returns the 1-based page from the query string.
func pageParam(r *http.Request) int {
	if page := r.URL.Query().Get("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil && p > 0 {
			return p
		}
	}
	return 1
}
