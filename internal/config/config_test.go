// filepath: internal/config/config_test.go
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sentinel-backend/internal/shared"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFlagSet mirrors the flags the cli package registers.
func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(FlagHost, "", "")
	fs.Int(FlagPort, 0, "")
	fs.String(FlagServiceName, "", "")
	fs.String(FlagShutdownTimeout, "", "")
	fs.String(FlagLogLevel, "", "")
	fs.String(FlagLogFormat, "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, b := range bindings {
		t.Setenv(b.env, "")
	}
}

func TestLoad(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nonexistent.toml")

	t.Run("Defaults", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load(missing, nil)
		require.NoError(t, err)

		assert.Equal(t, Default(), cfg)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "backend-service", cfg.Service.Name)
		assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
		assert.Equal(t, "0", cfg.Server.ShutdownTimeout)
		assert.Zero(t, cfg.Server.ShutdownTimeoutDuration, "drain waits for in-flight requests by default")
	})

	t.Run("No Config Path", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
	})

	t.Run("Environment Overrides Defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "9090")
		t.Setenv("SERVICE_NAME", "test-svc")
		t.Setenv("LOG_LEVEL", "WARN")
		t.Setenv("SHUTDOWN_TIMEOUT", "5s")

		cfg, err := Load(missing, nil)
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "test-svc", cfg.Service.Name)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeoutDuration)
	})

	t.Run("Empty Environment Falls Back", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "")
		t.Setenv("SERVICE_NAME", "")

		cfg, err := Load(missing, nil)
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "backend-service", cfg.Service.Name)
	})

	t.Run("Port Zero Is Accepted", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "0")

		cfg, err := Load(missing, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Server.Port)
	})

	t.Run("Malformed Port Fails", func(t *testing.T) {
		for _, v := range []string{"abc", "80x", "70000", "-1"} {
			clearEnv(t)
			t.Setenv("PORT", v)

			_, err := Load(missing, nil)
			assert.ErrorIs(t, err, shared.ErrInvalidPort, "PORT=%s", v)
		}
	})

	t.Run("Invalid Log Format Fails", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LOG_FORMAT", "xml")

		_, err := Load(missing, nil)
		assert.ErrorIs(t, err, shared.ErrInvalidFormat)
	})

	t.Run("Invalid Shutdown Timeout Fails", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")

		_, err := Load(missing, nil)
		assert.ErrorIs(t, err, shared.ErrInvalidDuration)
	})

	t.Run("Flags Override Environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PORT", "9090")
		t.Setenv("SERVICE_NAME", "from-env")

		fs := newFlagSet(t, "--port=7070", "--log-format=text")
		cfg, err := Load(missing, fs)
		require.NoError(t, err)

		assert.Equal(t, 7070, cfg.Server.Port)
		assert.Equal(t, "from-env", cfg.Service.Name) // flag not changed
		assert.Equal(t, "text", cfg.Logging.Format)
	})

	t.Run("Config File Loading", func(t *testing.T) {
		clearEnv(t)
		content := []byte(`
[server]
port = 6060
shutdown_timeout = "1m"
[service]
name = "file-svc"
[logging]
level = "error"
`)
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, content, 0644))

		cfg, err := Load(path, nil)
		require.NoError(t, err)

		assert.Equal(t, 6060, cfg.Server.Port)
		assert.Equal(t, time.Minute, cfg.Server.ShutdownTimeoutDuration)
		assert.Equal(t, "file-svc", cfg.Service.Name)
		assert.Equal(t, "error", cfg.Logging.Level)
		assert.Equal(t, "0.0.0.0", cfg.Server.Host) // default survives
	})

	t.Run("Environment Overrides Config File", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[service]\nname = \"file-svc\"\n"), 0644))
		t.Setenv("SERVICE_NAME", "env-svc")

		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "env-svc", cfg.Service.Name)
	})

	t.Run("Broken Config File Fails", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[server\nport = "), 0644))

		_, err := Load(path, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load configuration")
	})
}

func TestSaveConfig(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")

	want := Default()
	want.Service.Name = "saved-svc"
	want.Server.Port = 9191
	require.NoError(t, SaveConfig(path, want))

	got, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().WriteTOML(&buf))

	out := buf.String()
	assert.Contains(t, out, "[server]")
	assert.Contains(t, out, "port = 8080")
	assert.Contains(t, out, `name = "backend-service"`)
	assert.NotContains(t, out, "ShutdownTimeoutDuration")
}
