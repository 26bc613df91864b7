package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"courseapi/internal/model"
	"courseapi/internal/security"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func (r *fakeUserRepo) CreateUser(_ context.Context, _ *model.User) error { return nil }

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func newTestAuthenticator(t *testing.T) *Authenticator {
	t.Helper()
	hash, err := security.HashPassword("password1")
	require.NoError(t, err)
	repo := &fakeUserRepo{users: map[string]*model.User{
		"jo@example.com": {
			ID:           1,
			FirstName:    "Jo",
			LastName:     "Lee",
			EmailAddress: "jo@example.com",
			Password:     hash,
		},
	}}
	return NewAuthenticator(repo, zerolog.Nop())
}

func TestAuthenticatorMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		username     string
		password     string
		expectStatus int
	}{
		{"no credentials", "", "", http.StatusUnauthorized},
		{"unknown user", "nobody@example.com", "password1", http.StatusUnauthorized},
		{"wrong password", "jo@example.com", "password2", http.StatusUnauthorized},
		{"valid credentials", "jo@example.com", "password1", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authenticator := newTestAuthenticator(t)

			var boundUser *model.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				boundUser, _ = CurrentUser(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.username != "" {
				req.SetBasicAuth(tt.username, tt.password)
			}
			rr := httptest.NewRecorder()

			authenticator.Middleware()(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectStatus, rr.Code)

			if tt.expectStatus == http.StatusUnauthorized {
				// Rejections are uniform regardless of the failure reason.
				var body map[string]string
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.Equal(t, "Access Denied", body["message"])
				assert.Equal(t, `Basic realm="Courses API"`, rr.Header().Get("WWW-Authenticate"))
				assert.Nil(t, boundUser)
			} else {
				require.NotNil(t, boundUser)
				assert.Equal(t, "jo@example.com", boundUser.EmailAddress)
			}
		})
	}
}

func TestCurrentUserMissing(t *testing.T) {
	_, ok := CurrentUser(context.Background())
	assert.False(t, ok)
}
