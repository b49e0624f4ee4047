package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hardware-store/config"
	"hardware-store/repositories"
)

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		AppEnv:          "test",
		AppURL:          "http://localhost:3000",
		JWTSecret:       "test-secret",
		JWTExpiry:       time.Hour,
		CartStorage:     "file",
		CartStorageDir:  filepath.Join(dir, "storage"),
		StoreConfigFile: filepath.Join(dir, "settings.json"),
		UploadDir:       filepath.Join(dir, "uploads"),
		MaxUploadSize:   1 << 20,
	}
}

func TestNewInMemory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	a, err := New(context.Background(), testConfig(t), gin.New())
	require.NoError(t, err)
	defer a.Close()

	for _, path := range []string{"/health", "/api/products", "/api/config", "/api/cart"} {
		w := httptest.NewRecorder()
		a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestCartStorageSelection(t *testing.T) {
	cfg := testConfig(t)

	kv, err := cartStorage(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &repositories.FileKVStore{}, kv)

	cfg.CartStorage = "redis"
	kv, err = cartStorage(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &repositories.MemoryKVStore{}, kv)

	cfg.CartStorage = ""
	kv, err = cartStorage(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &repositories.MemoryKVStore{}, kv)
}
