package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORAGE_DRIVER", "JWT_ISSUER", "JWT_TTL_MINUTES", "RESET_TTL_MINUTES", "BCRYPT_COST"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "postgres", cfg.StorageDriver)
	require.Equal(t, "talent-registry", cfg.JWTIssuer)
	require.Equal(t, 24*60, cfg.JWTTTLMinutes)
	require.Equal(t, 60, cfg.ResetTTLMins)
	require.Equal(t, 10, cfg.BcryptCost)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_TTL_MINUTES", "15")
	t.Setenv("RESET_TTL_MINUTES", "not-a-number")

	cfg := Load()

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "memory", cfg.StorageDriver)
	require.Equal(t, 15, cfg.JWTTTLMinutes)
	// malformed numeric values fall back to defaults
	require.Equal(t, 60, cfg.ResetTTLMins)
}
