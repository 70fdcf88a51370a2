package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sentinel-backend/internal/api/handlers"
	"sentinel-backend/internal/httpserver"
	"sentinel-backend/internal/logging"
	"sentinel-backend/internal/server"
	"sentinel-backend/internal/services"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewServeCommand(globalOptions *GlobalOptions) *cobra.Command {

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the server",
		Long: `Start the HTTP server. SIGINT or SIGTERM stops accepting new connections,
waits for in-flight requests and exits with status 0.

By default the drain has no deadline and the orchestrator's grace period
bounds it. With --shutdown-timeout set, requests still running when it
expires are cut off and the exit status is 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, globalOptions)
		},
	}

	return serveCmd
}

// serve wires the services into the HTTP server and runs it until a
// termination signal arrives or the command context is cancelled.
func serve(cmd *cobra.Command, globalOptions *GlobalOptions) error {
	cfg, err := globalOptions.loadConfig(cmd)
	if err != nil {
		return err
	}

	out := globalOptions.stdout()
	logger := logging.NewLogger(cfg.Logging.Level, cfg.Logging.Format, out)
	logger.WithFields(logrus.Fields{
		"service": cfg.Service.Name,
		"addr":    cfg.Addr(),
		"version": Version,
	}).Debug("configuration loaded")

	// Service Initialization
	infoService := services.NewInfoService(cfg.Service.Name, globalOptions.StartTime, services.NewHostProbe(), logger)
	h := handlers.NewHandlers(infoService, logger)
	handler := httpserver.NewHandler(h, logging.NewAccessLogger(out))

	srv, err := server.New(cfg, handler, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	// --- Graceful Shutdown Setup ---
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
