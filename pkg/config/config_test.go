package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9191", cfg.Port)
	assert.True(t, cfg.IsProduction())
}

func TestValidate_RejectsBadPort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{"non numeric", "http"},
		{"zero", "0"},
		{"too large", "70000"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Port: tt.port, Env: "development"}
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_RejectsUnknownEnv(t *testing.T) {
	cfg := &Config{Port: "8080", Env: "staging"}
	assert.Error(t, cfg.Validate())
}
