package configuration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigurationDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOG_PATH", filepath.Join(dir, "app.log"))
	t.Setenv("PORT", "4321")
	t.Setenv("GO_APP_ENV", "development")

	c := &Configuration{}
	require.NoError(t, c.load(nil))
	t.Cleanup(c.Unload)

	require.Equal(t, "localhost:4321", c.SocketAddress)
	require.Equal(t, "data/directory.db", c.DataPath)
	require.Equal(t, "http", c.Scheme())
	require.NotNil(t, c.Logger())
}

func TestConfigurationProductionSocket(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOG_PATH", filepath.Join(dir, "app.log"))
	t.Setenv("PORT", "8080")
	t.Setenv("GO_APP_ENV", Production)

	c := &Configuration{}
	require.NoError(t, c.load(nil))
	t.Cleanup(c.Unload)

	require.Equal(t, ":8080", c.SocketAddress)
	require.Equal(t, "https", c.Scheme())
}
