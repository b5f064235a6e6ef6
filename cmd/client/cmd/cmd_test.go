package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"devdash/internal/app/server"
	"devdash/internal/app/server/config"
	"devdash/internal/domain/listing"
	"devdash/internal/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, mode listing.Mode) string {
	t.Helper()

	cfg := &config.Config{Env: config.EnvLocal, Mutation: string(mode), Secret: config.SecretKey}
	cfg.DB.Storage = config.StorageMemory
	cfg.View.TTL = time.Minute

	srv, err := server.New(context.Background(), cfg, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts.URL
}

// run выполняет команду так, как ее запустил бы пользователь
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// отдельный файл конфигурации, чтобы не читать ~/.devdash
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("app_env: local\n"), 0o600))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	t.Cleanup(func() {
		serverURL, outputFlag, jsonOutput = "", "table", false
	})

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestCLI(t *testing.T) {
	url := startServer(t, listing.ModeStub)

	t.Run("list with filter", func(t *testing.T) {
		out, err := run(t, "--server", url, "list", "projects", "-f", "status=ongoing")
		require.NoError(t, err)
		assert.Contains(t, out, "E-commerce Platform")
		assert.Contains(t, out, "Показано 3 из 6")
	})

	t.Run("stats as json", func(t *testing.T) {
		out, err := run(t, "--server", url, "--json", "stats")
		require.NoError(t, err)

		var got map[string]int
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, 6, got["total_projects"])
	})

	t.Run("get secret as yaml", func(t *testing.T) {
		out, err := run(t, "--server", url, "-o", "yaml", "get", "secrets", "2")
		require.NoError(t, err)
		assert.Contains(t, out, "key:")
		assert.Contains(t, out, "•")
	})

	t.Run("unknown kind fails before request", func(t *testing.T) {
		_, err := run(t, "--server", "127.0.0.1:1", "delete", "widgets", "1")
		assert.ErrorContains(t, err, "widgets")
	})

	t.Run("protected owner", func(t *testing.T) {
		_, err := run(t, "--server", url, "delete", "team", "1")
		assert.ErrorContains(t, err, "409")
	})

	t.Run("bad output format", func(t *testing.T) {
		_, err := run(t, "--server", url, "-o", "csv", "stats")
		assert.Error(t, err)
	})
}

func TestCLI_Init(t *testing.T) {
	url := startServer(t, listing.ModeStub)
	path := filepath.Join(t.TempDir(), "devdash", "config.yaml")

	out, err := run(t, "--server", url, "init", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, out, "хранилище memory")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "server_address: "+url)
}
