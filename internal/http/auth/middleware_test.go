package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gisuarez/expenso/internal/auth"
	"github.com/gisuarez/expenso/internal/user"
)

func newProtectedServer(t *testing.T, repo user.Repository, tokens *auth.TokenManager) *httptest.Server {
	t.Helper()

	handler := NewHandler(user.NewService(repo), tokens)

	mux := http.NewServeMux()
	mux.Handle("/me", handler.Authenticator(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := UserFromContext(r.Context())
		require.True(t, ok)

		w.Write([]byte(u.Username))
	})))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func TestAuthenticatorResolvesUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := user.NewMockRepository(ctrl)
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	u := &user.User{ID: uuid.New(), Username: "giulliano"}
	repo.EXPECT().GetUserByUsername(gomock.Any(), "giulliano").Return(u, nil)

	srv := newProtectedServer(t, repo, tokens)

	token, err := tokens.Issue(u.ID, u.Username)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthenticatorFallsBackToID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := user.NewMockRepository(ctrl)
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	u := &user.User{ID: uuid.New(), Username: "renamed"}
	repo.EXPECT().GetUserByUsername(gomock.Any(), "giulliano").Return(nil, user.ErrNotFound)
	repo.EXPECT().GetUser(gomock.Any(), u.ID).Return(u, nil)

	srv := newProtectedServer(t, repo, tokens)

	token, err := tokens.Issue(u.ID, "giulliano")
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthenticatorRejectsMissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := user.NewMockRepository(ctrl)
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	srv := newProtectedServer(t, repo, tokens)

	resp, err := http.Get(srv.URL + "/me")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticatorRejectsBadToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := user.NewMockRepository(ctrl)
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	srv := newProtectedServer(t, repo, tokens)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
