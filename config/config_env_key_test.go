package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"cache": map[string]any{
			"redisAddr": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "CACHE_REDISADDR", want: "cache.redisAddr"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

const sampleConfig = `
env:
  env: test
  serviceName: tube
  log:
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
secretKey:
  access: from-file
auth:
  tokenTTL: 2h
cache:
  enabled: true
  type: redis
  redisAddr: localhost:6379
`

func TestLoadWithEnv_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(sampleConfig), 0o600))
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SECRETKEY_ACCESS", "from-env")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "tube", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	require.NotNil(t, cfg.Cache)
	assert.Equal(t, CacheTypeRedis, cfg.Cache.Type)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultTokenTTL, cfg.Auth.TokenTTL)
	assert.Equal(t, CacheTypeMemory, cfg.Cache.Type)
	assert.Equal(t, defaultCacheTTL, cfg.Cache.TTL)
	assert.False(t, cfg.Cache.Enabled)
}
