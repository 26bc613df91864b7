package middleware

import (
	"context"
	"errors"
	"net/http"

	"courseapi/internal/apierrors"
	"courseapi/internal/model"
	"courseapi/internal/repository"
	"courseapi/internal/security"

	"github.com/rs/zerolog"
)

// Injected key type to avoid context collisions
type contextKey string

const userContextKey = contextKey("user")

var (
	ErrNoCredentials      = errors.New("missing basic auth credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Authenticator resolves HTTP Basic credentials to a stored user. The
// identifier is the email address; the secret is the plaintext password
// verified against the stored bcrypt hash. It holds no state beyond the
// repository reference and never mutates the store.
type Authenticator struct {
	users  repository.UserRepository
	logger zerolog.Logger
}

// NewAuthenticator creates a new Authenticator.
func NewAuthenticator(users repository.UserRepository, logger zerolog.Logger) *Authenticator {
	return &Authenticator{users: users, logger: logger}
}

// Authenticate validates the request's Basic credentials and returns the
// matching user. All rejection reasons map to ErrNoCredentials or
// ErrInvalidCredentials; the differentiated reason is logged server-side only.
func (a *Authenticator) Authenticate(r *http.Request) (*model.User, error) {
	email, password, ok := r.BasicAuth()
	if !ok {
		a.logger.Warn().Msg("Auth header not found")
		return nil, ErrNoCredentials
	}

	user, err := a.users.GetUserByEmail(r.Context(), email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		a.logger.Warn().Msgf("User not found for username: %s", email)
		return nil, ErrInvalidCredentials
	}

	if !security.CheckPassword(password, user.Password) {
		a.logger.Warn().Msgf("Authentication failure for username: %s", user.FirstName)
		return nil, ErrInvalidCredentials
	}

	a.logger.Debug().Msgf("Authentication successful for username: %s", user.EmailAddress)
	return user, nil
}

// Middleware returns HTTP middleware that authenticates the request and binds
// the resolved user into the request context. Rejections are surfaced
// uniformly as 401 "Access Denied" regardless of reason, so callers cannot
// probe which accounts exist.
func (a *Authenticator) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.Authenticate(r)
			if err != nil {
				if errors.Is(err, ErrNoCredentials) || errors.Is(err, ErrInvalidCredentials) {
					w.Header().Set("WWW-Authenticate", `Basic realm="Courses API"`)
					apierrors.WriteMessage(w, http.StatusUnauthorized, "Access Denied")
					return
				}
				a.logger.Error().Err(err).Msg("Failed to look up user during authentication")
				apierrors.WriteMessage(w, http.StatusInternalServerError, "Internal Server Error")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the authenticated user bound to the request context.
func CurrentUser(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userContextKey).(*model.User)
	return user, ok
}
