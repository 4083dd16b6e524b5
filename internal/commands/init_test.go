package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerbooks-dev/brokerbooks/internal/config"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, "Sharma Transport Co", "http://localhost:8000/api"))

	cfg, err := config.Load(filepath.Join(dir, "brokerbooks.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Sharma Transport Co", cfg.Business.Name)
	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)

	env, err := os.ReadFile(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Contains(t, string(env), config.TokenEnv)

	gitignore, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(gitignore), ".env")
	assert.Contains(t, string(gitignore), ".brokerbooks-cache/")
}

func TestRunInitKeepsExistingEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("BROKERBOOKS_API_TOKEN=keepme\n"), 0o600))

	require.NoError(t, runInit(dir, "Test", "http://localhost:8000/api"))

	env, err := os.ReadFile(envPath)
	require.NoError(t, err)
	assert.Contains(t, string(env), "keepme", "init must not clobber an existing token")
}

func TestParseDateFlag(t *testing.T) {
	when, err := parseDateFlag("from", "2026-01-15")
	require.NoError(t, err)
	assert.Equal(t, 15, when.Day())

	when, err = parseDateFlag("from", "")
	require.NoError(t, err)
	assert.True(t, when.IsZero())

	_, err = parseDateFlag("from", "15/01/2026")
	assert.Error(t, err)
}
