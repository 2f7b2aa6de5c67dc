package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SITE_PASSWORD_HASH", "")
	t.Setenv("JWT_SECRET", "")

	require.NoError(t, LoadConfig())
	assert.Equal(t, "8080", Port)
	assert.Equal(t, "info", LogLevel)
	assert.Equal(t, "json", LogFormat)
	assert.Equal(t, []string{"http://localhost:3000"}, CorsOrigins)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("BASE_URL", "https://raffle.example.com/")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com/")
	t.Setenv("SITE_PASSWORD_HASH", "5E884898DA28047151D0E56F8DC6292773603D0D6AABBDD62A11EF721D1542D8")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")
	t.Setenv("SITE_AUTH_USERNAME", "door")
	t.Setenv("SITE_AUTH_PASSWORD", "keeper")

	require.NoError(t, LoadConfig())
	assert.Equal(t, "9000", Port)
	assert.Equal(t, "https://raffle.example.com", BaseURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, CorsOrigins)
	assert.Equal(t, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", SitePasswordHash)
	assert.Equal(t, "door", SiteAuthUsername)
	assert.Equal(t, "keeper", SiteAuthPassword)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		hash    string
		secret  string
		wantErr bool
	}{
		{"valid", "8080", "", "", false},
		{"bad port", "http", "", "", true},
		{"port out of range", "70000", "", "", true},
		{"hash not hex", "8080", "not-a-hash", "", true},
		{"hash too short", "8080", "abcd", "", true},
		{"short secret", "8080", "", "short", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Port, SitePasswordHash, JWTSecret = tt.port, tt.hash, tt.secret
			err := Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
