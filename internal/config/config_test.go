package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "admin-dashboard", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, "https://jsonplaceholder.typicode.com", cfg.Directory.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Directory.Timeout())
	assert.Equal(t, 5, cfg.Dashboard.PageSize)
	assert.Equal(t, StatusPolicyRandom, cfg.Dashboard.StatusPolicy)
	assert.False(t, cfg.Dashboard.AnalyticsDeriveActive)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "user@example.com", cfg.Auth.DemoEmail)
	assert.Equal(t, "password123", cfg.Auth.DemoPassword)
	assert.Equal(t, "John Doe", cfg.Auth.DemoName)
	assert.False(t, cfg.Auth.RequireSession)
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DIRECTORY_BASE_URL", "http://directory.local/")
	t.Setenv("DIRECTORY_TIMEOUT_SECONDS", "3")
	t.Setenv("DASHBOARD_PAGE_SIZE", "10")
	t.Setenv("DASHBOARD_STATUS_POLICY", "Parity")
	t.Setenv("ANALYTICS_DERIVE_ACTIVE", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("AUTH_REQUIRE_SESSION", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.Equal(t, "http://directory.local", cfg.Directory.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Directory.Timeout())
	assert.Equal(t, 10, cfg.Dashboard.PageSize)
	assert.Equal(t, StatusPolicyParity, cfg.Dashboard.StatusPolicy)
	assert.True(t, cfg.Dashboard.AnalyticsDeriveActive)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.True(t, cfg.Auth.RequireSession)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "redis db", key: "REDIS_DB", val: "two"},
		{name: "status policy", key: "DASHBOARD_STATUS_POLICY", val: "coin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_NonPositivePageSize(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DASHBOARD_PAGE_SIZE", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Dashboard.PageSize)
}

func TestRequestTimeout_Disabled(t *testing.T) {
	assert.Zero(t, AppConfig{}.RequestTimeout())
}
