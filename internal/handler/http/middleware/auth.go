package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/jobly-app/jobly-backend-go/internal/domain/auth"
	"github.com/jobly-app/jobly-backend-go/internal/domain/user"
	"github.com/jobly-app/jobly-backend-go/internal/handler/http/response"
)

// currentClaims pulls the verified token claims from the request context.
// A missing or invalid token is not an error here: the request simply has no
// identity and proceeds as anonymous until a gate demands one.
func currentClaims(r *http.Request) (map[string]interface{}, bool) {
	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return nil, false
	}
	return claims, true
}

func claimedUsername(claims map[string]interface{}) (string, bool) {
	username, ok := claims["username"].(string)
	return username, ok && username != ""
}

func isAdmin(claims map[string]interface{}) bool {
	admin, ok := claims["is_admin"].(bool)
	return ok && admin
}

// Authenticated requires a valid token with a username claim.
func Authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentClaims(r)
		if !ok {
			response.HandleError(w, auth.ErrAuthenticationRequired)
			return
		}
		if _, ok := claimedUsername(claims); !ok {
			response.HandleError(w, auth.ErrAuthenticationRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AdminOnly requires a valid token with the admin flag set.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentClaims(r)
		if !ok {
			response.HandleError(w, auth.ErrAuthenticationRequired)
			return
		}
		if !isAdmin(claims) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AdminOrSelf requires the caller to be an admin or the user named by the
// given URL parameter.
func AdminOrSelf(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := currentClaims(r)
			if !ok {
				response.HandleError(w, auth.ErrAuthenticationRequired)
				return
			}
			username, ok := claimedUsername(claims)
			if !ok {
				response.HandleError(w, auth.ErrAuthenticationRequired)
				return
			}
			if !isAdmin(claims) && username != chi.URLParam(r, param) {
				response.HandleError(w, user.ErrNotSelfOrAdmin)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
