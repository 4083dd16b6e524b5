package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default("Sharma Transport Co", "http://localhost:8000/api")

	assert.Equal(t, "Sharma Transport Co", cfg.Business.Name)
	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
	assert.Equal(t, ".brokerbooks-cache/snapshot.db", cfg.Cache.Path)
	assert.Equal(t, []string{"1010", "1020"}, cfg.Cash.AccountCodes)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brokerbooks.yaml")
	cfg := Default("Test Brokers", "https://books.example.com/api")
	cfg.Cash.AccountCodes = []string{"1010"}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("business: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestTokenFromEnv(t *testing.T) {
	t.Setenv(TokenEnv, "env-token")
	assert.Equal(t, "env-token", Token())
}
