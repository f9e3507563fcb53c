package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "campus/internal/shared/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, sharedConfig.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 60, cfg.Auth.JWT.AccessExpMinutes)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Contains(t, cfg.Server.AllowedHeaders, "Authorization")
	assert.NotContains(t, cfg.Server.AllowedHeaders, "X-CSRF-Token")
	assert.Contains(t, cfg.Server.AllowedMethods, "PATCH")
	assert.Equal(t, 86400, cfg.Server.CORSMaxAge)
	assert.Same(t, cfg, Get())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CAMPUS_SERVER_PORT", "9090")
	t.Setenv("CAMPUS_DATABASE_DRIVER", "postgres")
	t.Setenv("CAMPUS_RATELIMIT_REQUESTS", "5")

	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "test", cfg.Server.Mode)
	assert.Equal(t, sharedConfig.DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 5, cfg.RateLimit.Requests)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("CAMPUS_DATABASE_DRIVER", "oracle")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestLoad_ReleaseRequiresSecret(t *testing.T) {
	_, err := Load("release")
	require.Error(t, err)

	t.Setenv("CAMPUS_AUTH_JWT_SECRET", "a-real-secret")
	cfg, err := Load("release")
	require.NoError(t, err)
	assert.Equal(t, "a-real-secret", cfg.Auth.JWT.Secret)
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	mysql := sharedConfig.DatabaseConfig{Driver: "mysql", Host: "db", Port: 3306, Username: "u", Password: "p", Database: "campus"}
	assert.Equal(t, "u:p@tcp(db:3306)/campus?charset=utf8mb4&parseTime=True&loc=UTC", mysql.GetDSN())

	pg := sharedConfig.DatabaseConfig{Driver: "postgres", Host: "db", Port: 5432, Username: "u", Password: "p", Database: "campus"}
	assert.Contains(t, pg.GetDSN(), "sslmode=disable")

	lite := sharedConfig.DatabaseConfig{Driver: "sqlite", Database: "campus.db"}
	assert.Equal(t, "campus.db", lite.GetDSN())
}
