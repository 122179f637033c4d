package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const profiles = `[DEFAULT]
database_path = /tmp/offers.db

[swiss]
database_path = /data/swiss.db
currency = CHF

[empty]
`

func TestRegistry_GetProfiles(t *testing.T) {
	// Given
	registry, err := NewRegistry(writeProfiles(t, profiles))
	require.NoError(t, err)

	// When
	got, err := registry.GetProfiles(context.Background())

	// Then
	require.NoError(t, err)
	assert.Equal(t, []domain.ConfigProfile{
		{Name: "DEFAULT", DatabasePath: "/tmp/offers.db", Currency: "EUR"},
		{Name: "swiss", DatabasePath: "/data/swiss.db", Currency: "CHF"},
	}, got)
}

func TestRegistry_GetProfile(t *testing.T) {
	registry, err := NewRegistry(writeProfiles(t, profiles))
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("named", func(t *testing.T) {
		p, err := registry.GetProfile(ctx, "swiss")
		require.NoError(t, err)
		assert.Equal(t, "swiss:/data/swiss.db", p.String())
		assert.Equal(t, "CHF", p.Currency)
	})

	t.Run("empty name selects default", func(t *testing.T) {
		p, err := registry.GetProfile(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "DEFAULT", p.Name)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := registry.GetProfile(ctx, "missing")
		assert.ErrorContains(t, err, "profile missing not found")
	})

	t.Run("without database path", func(t *testing.T) {
		_, err := registry.GetProfile(ctx, "empty")
		assert.ErrorContains(t, err, "database_path is not set")
	})
}

func TestNewRegistry_MissingFile(t *testing.T) {
	_, err := NewRegistry(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
