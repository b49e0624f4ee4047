package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hardware-store/models"
	"hardware-store/services"
)

var admin = &models.User{ID: "1", Email: "admin@test.com", Name: "Admin User", Role: models.RoleAdmin}

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		switch {
		case req.Password == "boom":
			w.WriteHeader(http.StatusInternalServerError)
		case req.Email != admin.Email || req.Password != "admin123":
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Message: "Credenciales inválidas"})
		default:
			http.SetCookie(w, &http.Cookie{Name: "token", Value: "signed", Path: "/", HttpOnly: true})
			_ = json.NewEncoder(w).Encode(models.SessionResponse{User: admin})
		}
	})
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "", Path: "/", MaxAge: -1})
		_ = json.NewEncoder(w).Encode(models.Response{Success: true})
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		resp := models.SessionResponse{}
		if c, err := r.Cookie("token"); err == nil && c.Value == "signed" {
			resp.User = admin
		}
		_ = json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("GET /api/config", func(w http.ResponseWriter, r *http.Request) {
		cfg := models.DefaultStoreConfig()
		cfg.StoreName = "Remota"
		cfg.PrimaryColor = "#ffffff"
		_ = json.NewEncoder(w).Encode(cfg)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newSession(t *testing.T, baseURL string) *Session {
	t.Helper()
	c, err := New(baseURL + "/api/")
	require.NoError(t, err)
	return NewSession(c)
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newSession(t, newAPI(t).URL)

	assert.Nil(t, s.CheckAuth(ctx))

	user, err := s.Login(ctx, "admin@test.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, admin, user)
	assert.Equal(t, admin, s.User())

	assert.Equal(t, admin, s.CheckAuth(ctx))

	require.NoError(t, s.Logout(ctx))
	assert.Nil(t, s.User())
	assert.Nil(t, s.CheckAuth(ctx))
}

func TestLoginErrors(t *testing.T) {
	ctx := context.Background()
	s := newSession(t, newAPI(t).URL)

	_, err := s.Login(ctx, "admin@test.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Credenciales inválidas", err.Error())
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Code)

	_, err = s.Login(ctx, "admin@test.com", "boom")
	require.Error(t, err)
	assert.Equal(t, "login failed (500)", err.Error())
	assert.Nil(t, s.User())
}

func TestLogoutForgetsUserWhenServerFails(t *testing.T) {
	s := newSession(t, "http://127.0.0.1:1")
	s.setUser(admin)

	assert.Error(t, s.Logout(context.Background()))
	assert.Nil(t, s.User())
}

func TestConfigSourceFeedsConfigService(t *testing.T) {
	c, err := New(newAPI(t).URL + "/api")
	require.NoError(t, err)

	store := services.NewConfigService(NewConfigSource(c), nil)
	store.LoadConfig(context.Background())

	assert.Equal(t, "Remota", store.Config().StoreName)
	assert.Equal(t, "255, 255, 255", store.Theme().Variables["--color-primary-500"])
}

func TestConfigSourceUnreachable(t *testing.T) {
	c, err := New("http://127.0.0.1:1/api")
	require.NoError(t, err)

	store := services.NewConfigService(NewConfigSource(c), nil)
	store.LoadConfig(context.Background())
	assert.Equal(t, models.DefaultStoreConfig().StoreName, store.Config().StoreName)
}
