package web

import (
	"crypto/subtle"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/academicspaces/roomboard/internal/config"
)

// AuthMiddleware guards the admin routes with HTTP basic auth. The configured
// password is a bcrypt hash, never the plain text.
type AuthMiddleware struct {
	username     string
	passwordHash string
}

// NewAuthMiddleware creates the middleware from the admin configuration.
func NewAuthMiddleware(cfg config.AdminConfig) *AuthMiddleware {
	return &AuthMiddleware{
		username:     cfg.Username,
		passwordHash: cfg.PasswordHash,
	}
}

// RequireAuth wraps a handler with credential verification.
func (auth *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if auth.username == "" || auth.passwordHash == "" {
			log.Printf("Warning: admin credentials not configured - admin access disabled")
			http.Error(w, "Authentication not configured", http.StatusServiceUnavailable)
			return
		}

		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="roomboard admin"`)
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}

		usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(auth.username)) == 1
		passwordErr := bcrypt.CompareHashAndPassword([]byte(auth.passwordHash), []byte(password))
		if !usernameMatch || passwordErr != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="roomboard admin"`)
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		next(w, r)
	}
}
