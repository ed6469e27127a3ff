package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-todo-bff/internal/apiclient"
	"go-todo-bff/internal/credential"
	"go-todo-bff/internal/models"
	"go-todo-bff/internal/session"
)

// newTestSession はフェイクBFFに向けたセッションを作成します。
// リトライ待機は実時間を消費しないよう無効化します。
func newTestSession(serverURL string) (*session.Session, *credential.Store) {
	store := credential.NewStore()
	client := apiclient.New(serverURL, store)
	client.Sleep = func(time.Duration) {}
	return session.New(client, store), store
}

func TestCheckAuth_NoCredential(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	s, _ := newTestSession(server.URL)

	err := s.CheckAuth(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, s.User())
	assert.Equal(t, 0, requests, "CheckAuth without a credential must not contact the server")
}

func TestCheckAuth_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.User{ID: 1, Username: "taro", Email: "taro@example.com"})
	}))
	defer server.Close()

	s, store := newTestSession(server.URL)
	store.Set("valid-token")

	err := s.CheckAuth(context.Background())
	require.NoError(t, err)
	require.NotNil(t, s.User())
	assert.Equal(t, "taro", s.User().Username)
	assert.True(t, store.Has())
}

func TestCheckAuth_AuthErrorClearsCredential(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.ErrorResponse{Message: "Unauthorized"})
	}))
	defer server.Close()

	s, store := newTestSession(server.URL)
	store.Set("stale-token")

	err := s.CheckAuth(context.Background())
	require.Error(t, err)
	assert.True(t, apiclient.IsAuthError(err))
	assert.Nil(t, s.User())
	assert.False(t, store.Has())
}

func TestCheckAuth_TemporaryErrorKeepsCredential(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(models.ErrorResponse{Message: "temporarily unavailable"})
	}))
	defer server.Close()

	s, store := newTestSession(server.URL)
	store.Set("valid-token")

	err := s.CheckAuth(context.Background())
	require.Error(t, err)
	assert.Nil(t, s.User())
	// 一時的エラーでは再試行に備えてクレデンシャルを残す
	assert.True(t, store.Has(), "Temporary failures must not force a re-login")
}

func TestLogin_SetsUserAndCredential(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "issued-token", Path: "/"})
		json.NewEncoder(w).Encode(models.LoginResponse{
			User:    models.User{ID: 1, Username: "taro", Email: "taro@example.com"},
			Message: "Login successful",
		})
	}))
	defer server.Close()

	s, store := newTestSession(server.URL)

	err := s.Login(context.Background(), "taro", "password123")
	require.NoError(t, err)
	require.NotNil(t, s.User())
	assert.Equal(t, 1, s.User().ID)
	assert.Equal(t, "issued-token", store.Get())
	assert.False(t, s.IsLoading())
}

func TestLogin_FailureResetsUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.ErrorResponse{Message: "Invalid credentials"})
	}))
	defer server.Close()

	s, _ := newTestSession(server.URL)

	err := s.Login(context.Background(), "taro", "wrongpassword1")
	require.Error(t, err)
	assert.Nil(t, s.User())
}

func TestRegister_PerformsFollowUpLogin(t *testing.T) {
	var loginCalled bool
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.RegisterResponse{
			ID:       5,
			Username: "hanako",
			Email:    "hanako@example.com",
			Message:  "User registered successfully",
		})
	})
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		loginCalled = true
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "issued-token", Path: "/"})
		json.NewEncoder(w).Encode(models.LoginResponse{
			User: models.User{ID: 5, Username: "hanako", Email: "hanako@example.com"},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s, store := newTestSession(server.URL)

	err := s.Register(context.Background(), "hanako", "hanako@example.com", "password123")
	require.NoError(t, err)
	assert.True(t, loginCalled, "Registration must be followed by a login to obtain the session cookie")
	require.NotNil(t, s.User())
	assert.Equal(t, 5, s.User().ID)
	assert.True(t, store.Has())
}

func TestRegister_FailurePropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			Message: "ユーザー名またはメールアドレスが既に使用されています",
			Errors:  map[string]string{"username": "taken"},
		})
	}))
	defer server.Close()

	s, _ := newTestSession(server.URL)

	err := s.Register(context.Background(), "taken_name", "taro@example.com", "password123")
	require.Error(t, err)
	assert.Nil(t, s.User())
	assert.Equal(t, "taken", apiclient.ExtractFieldErrors(err)["username"])
}

func TestLogout_ClearsStateEvenWhenBackendFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.ErrorResponse{Message: "boom"})
	}))
	defer server.Close()

	s, store := newTestSession(server.URL)
	store.Set("valid-token")

	s.Logout(context.Background())
	assert.Nil(t, s.User())
	assert.False(t, store.Has(), "Logout must clear local state regardless of backend failures")
}

func TestLogout_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.StatusResponse{Status: "success", Message: "Logged out"})
	}))
	defer server.Close()

	s, store := newTestSession(server.URL)
	store.Set("valid-token")

	s.Logout(context.Background())
	assert.Nil(t, s.User())
	assert.False(t, store.Has())
}
