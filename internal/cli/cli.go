package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"sentinel-backend/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is set at build time via -ldflags "-X sentinel-backend/internal/cli.Version=...".
var Version = "1.0.0"

const defaultConfigPath = "config.toml"

type GlobalOptions struct {
	CfgFilePath string
	StartTime   time.Time

	// Stdout receives application and access logs. Defaults to os.Stdout.
	Stdout io.Writer
}

func NewRootCMD(globalOptions *GlobalOptions) *cobra.Command {

	rootCMD := &cobra.Command{
		Use:   "backend",
		Short: "Backend probe service",
		Long: `A minimal HTTP backend for container orchestration exercises.
It serves /health for readiness and liveness probes, / with host and runtime
information, and a JSON 404 for everything else.

Running without a subcommand starts the server.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, globalOptions)
		},
	}

	// register global flags
	globalOptions.registerFlags(rootCMD.PersistentFlags())

	// add subcommands
	rootCMD.AddCommand(NewServeCommand(globalOptions))
	rootCMD.AddCommand(NewConfigCommand(globalOptions))
	rootCMD.AddCommand(NewHealthcheckCommand(globalOptions))

	return rootCMD
}

func (options *GlobalOptions) registerFlags(fs *pflag.FlagSet) {
	// flags that can be used for each command
	fs.StringVar(&options.CfgFilePath, "config", defaultConfigPath, "Path to an optional TOML configuration file. (Env: CONFIG_PATH)")
	fs.String(config.FlagHost, "", "Interface to listen on. (Env: HOST, default 0.0.0.0)")
	fs.Int(config.FlagPort, 0, "Port for the HTTP server, 0 picks a free port. (Env: PORT, default 8080)")
	fs.String(config.FlagServiceName, "", "Service name reported on the root route. (Env: SERVICE_NAME, default backend-service)")
	fs.String(config.FlagShutdownTimeout, "", "How long to wait for in-flight requests on shutdown, 0 waits forever. (Env: SHUTDOWN_TIMEOUT, default 0)")
	fs.String(config.FlagLogLevel, "", "Logging level (trace, debug, info, warn, error). (Env: LOG_LEVEL)")
	fs.String(config.FlagLogFormat, "", "Application log format (json, text). (Env: LOG_FORMAT)")
}

// loadConfig resolves the config file path and builds the configuration
// from defaults, file, environment and the flags of cmd.
func (options *GlobalOptions) loadConfig(cmd *cobra.Command) (config.Config, error) {
	path := options.CfgFilePath
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" && !cmd.Flags().Changed("config") {
		path = envPath
	}
	return config.Load(path, cmd.Flags())
}

func (options *GlobalOptions) stdout() io.Writer {
	if options.Stdout == nil {
		return os.Stdout
	}
	return options.Stdout
}

func Execute() {

	globalOptions := &GlobalOptions{StartTime: time.Now()}
	rootCmd := NewRootCMD(globalOptions)

	// Run the command based on os.Args
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
