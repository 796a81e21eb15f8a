package middlewares

import (
	"net/http"
	"strings"

	"github.com/spendwise/expense-backend/internal/domain/usecase"
	"github.com/spendwise/expense-backend/internal/utils"
)

// VerifyAccessToken decodes the bearer token and requires a live session in
// the session store. The resolved username and session id are forwarded as
// headers; controllers never see unauthenticated requests.
func VerifyAccessToken(next http.Handler, findSession usecase.FindSessionRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get("Authorization")
		if authorization == "" {
			http.Error(w, "Missing or invalid access token", http.StatusUnauthorized)
			return
		}

		authorization = strings.TrimPrefix(authorization, "Bearer ")

		claims, err := utils.NewSessionTokenUtil().DecodeToken(authorization)
		if err != nil {
			http.Error(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		sessionId, ok := claims["jti"].(string)
		if !ok || sessionId == "" {
			http.Error(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		username, err := findSession.Find(sessionId)
		if err != nil {
			http.Error(w, "Error verifying session", http.StatusInternalServerError)
			return
		}

		if username == "" {
			http.Error(w, "Session expired, please log in again", http.StatusUnauthorized)
			return
		}

		r.Header.Set("Username", username)
		r.Header.Set("SessionId", sessionId)

		next.ServeHTTP(w, r)
	})
}
