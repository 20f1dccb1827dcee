package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"signing": "",
			"reset":   "",
		},
		"auth": map[string]any{
			"identityTokenTtl": "30m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_SIGNING", want: "secretKey.signing"},
		{envKey: "SECRETKEY_RESET", want: "secretKey.reset"},
		{envKey: "AUTH_IDENTITYTOKENTTL", want: "auth.identityTokenTtl"},
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

func TestLoadWithEnv_OverridesSecretsFromEnv(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
secretKey:
  signing: from-file
  reset: from-file-reset
auth:
  identityTokenTtl: 30m
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	t.Chdir(dir)
	t.Setenv("SECRETKEY_RESET", "from-env-reset")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.SecretKey.Signing)
	assert.Equal(t, "from-env-reset", cfg.SecretKey.Reset)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 30*time.Minute, cfg.Auth.IdentityTokenTTL)
}

func TestConfig_ApplyDefaultsAndValidate(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultIdentityTokenTTL, cfg.Auth.IdentityTokenTTL)
	assert.Equal(t, defaultIntentTokenTTL, cfg.Auth.IntentTokenTTL)

	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secretKey.signing")

	cfg.SecretKey.Signing = "signing"
	err = cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secretKey.reset")

	cfg.SecretKey.Reset = "signing"
	assert.NoError(t, cfg.validate())
}
