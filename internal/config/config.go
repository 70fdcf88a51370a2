// filepath: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"sentinel-backend/internal/shared"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Defaults used when neither the config file, the environment nor a flag sets a value.
const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 8080
	DefaultServiceName     = "backend-service"
	DefaultShutdownTimeout = "0"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
)

// Flag names. The cli package registers them, Load reads the ones that changed.
const (
	FlagHost            = "host"
	FlagPort            = "port"
	FlagServiceName     = "service-name"
	FlagShutdownTimeout = "shutdown-timeout"
	FlagLogLevel        = "log-level"
	FlagLogFormat       = "log-format"
)

type binding struct {
	key  string
	env  string
	flag string
}

var bindings = []binding{
	{key: "server.host", env: "HOST", flag: FlagHost},
	{key: "server.port", env: "PORT", flag: FlagPort},
	{key: "server.shutdown_timeout", env: "SHUTDOWN_TIMEOUT", flag: FlagShutdownTimeout},
	{key: "service.name", env: "SERVICE_NAME", flag: FlagServiceName},
	{key: "logging.level", env: "LOG_LEVEL", flag: FlagLogLevel},
	{key: "logging.format", env: "LOG_FORMAT", flag: FlagLogFormat},
}

// Config holds the application's configuration.
// It is built once by Load and treated as read-only afterwards.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Service ServiceConfig `toml:"service"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig holds the listener configuration.
type ServerConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	ShutdownTimeout string `toml:"shutdown_timeout"` // e.g. "30s", "2m", "0" (default) waits for in-flight requests however long they take

	ShutdownTimeoutDuration time.Duration `toml:"-"` // Runtime computed value
}

// ServiceConfig holds the identity reported on the root route.
type ServiceConfig struct {
	Name string `toml:"name"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "text"
}

// Addr returns the host:port pair the server listens on.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:                    DefaultHost,
			Port:                    DefaultPort,
			ShutdownTimeout:         DefaultShutdownTimeout,
		},
		Service: ServiceConfig{Name: DefaultServiceName},
		Logging: LoggingConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Load builds the configuration from, in increasing precedence: defaults,
// the TOML file at path, environment variables and the changed flags in flags.
// A missing file is not an error. Empty environment variables count as unset.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)
	v.SetDefault("service.name", DefaultServiceName)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return Config{}, fmt.Errorf("failed to load configuration from %s: %w", path, err)
		}
	}

	for _, b := range bindings {
		if err := v.BindEnv(b.key, b.env); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", b.env, err)
		}
		if flags == nil {
			continue
		}
		if f := flags.Lookup(b.flag); f != nil && f.Changed {
			v.Set(b.key, f.Value.String())
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	var c Config

	port, err := shared.ParsePort(v.GetString("server.port"))
	if err != nil {
		return c, fmt.Errorf("configuration error: %w", err)
	}
	c.Server.Port = port

	c.Server.Host = strings.TrimSpace(v.GetString("server.host"))
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}

	c.Server.ShutdownTimeout = v.GetString("server.shutdown_timeout")
	if c.Server.ShutdownTimeoutDuration, err = shared.ParseDuration(c.Server.ShutdownTimeout); err != nil {
		return c, fmt.Errorf("configuration error: shutdown_timeout: %w", err)
	}

	c.Service.Name = v.GetString("service.name")
	if strings.TrimSpace(c.Service.Name) == "" {
		c.Service.Name = DefaultServiceName
	}

	c.Logging.Level = strings.ToLower(v.GetString("logging.level"))
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}

	c.Logging.Format = strings.ToLower(v.GetString("logging.format"))
	switch c.Logging.Format {
	case "json", "text":
	case "":
		c.Logging.Format = DefaultLogFormat
	default:
		return c, fmt.Errorf("configuration error: %w: %q", shared.ErrInvalidFormat, c.Logging.Format)
	}

	return c, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// WriteTOML encodes the configuration as TOML.
func (c Config) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrorEncodeFile, err)
	}
	return nil
}

// SaveConfig writes the configuration to a TOML file at path.
func SaveConfig(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorCreateFile)
	}
	defer f.Close()
	if err := cfg.WriteTOML(f); err != nil {
		return fmt.Errorf("trying to save the config: %w", err)
	}
	return nil
}
