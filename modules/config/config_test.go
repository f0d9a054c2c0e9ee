package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingIsEmpty(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config"))
	require.NoError(t, err)
	assert.True(t, cfg.User.Empty())
}

func TestSetGetRoundTrip(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Set("user.name", "Ada Lovelace"))
	require.NoError(t, cfg.Set("user.email", "ada@example.com"))

	name, ok := cfg.Get("user.name")
	require.True(t, ok)
	assert.Equal(t, "Ada Lovelace", name)

	email, ok := cfg.Get("user.email")
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", email)
}

func TestSetUnknownKeyErrors(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Set("bogus.key", "x"))
}

func TestGetUnknownKeyNotOK(t *testing.T) {
	cfg := &Config{}
	_, ok := cfg.Get("bogus.key")
	assert.False(t, ok)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	cfg := &Config{}
	require.NoError(t, cfg.Set("user.name", "Ada Lovelace"))
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", loaded.User.Name)
}
