package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	v.AddConfigPath(t.TempDir())
	v.SetConfigName(configName)
	cfg, err := load(v)
	require.NoError(t, err)

	assert.Equal(t, defaultEnv, cfg.Env)
	assert.Equal(t, defaultServerAddress, cfg.ServerAddress)
	assert.Equal(t, defaultTimeout, cfg.Timeout)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_address: dash.local:9000\ntimeout: 5s\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dash.local:9000", cfg.ServerAddress)
	assert.Equal(t, 5*time.Second, cfg.Timeout)

	// окружение важнее файла
	t.Setenv("SERVER_ADDRESS", "https://dash.example.com/")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://dash.example.com", cfg.BaseURL())
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := &Config{Env: "dev", ServerAddress: "127.0.0.1:8081", Timeout: time.Minute}

	require.NoError(t, Save(want, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_Invalid(t *testing.T) {
	err := Save(&Config{Timeout: time.Second}, filepath.Join(t.TempDir(), "config.yaml"))
	assert.Error(t, err)
}
