package cli

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"sentinel-backend/internal/config"
	"sentinel-backend/internal/shared"

	"github.com/spf13/cobra"
)

type HealthcheckOptions struct {
	URL     string
	Timeout time.Duration
}

// NewHealthcheckCommand probes a running instance. Images without curl or
// wget can use it as their container health check.
func NewHealthcheckCommand(globalOptions *GlobalOptions) *cobra.Command {
	healthcheckOptions := &HealthcheckOptions{}

	healthcheckCmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Probe the health endpoint of a running server",
		Long: `GET the health endpoint and exit 0 on HTTP 200, 1 otherwise.
Without --url the local server on the configured port is probed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHealthcheck(cmd, globalOptions, healthcheckOptions)
		},
	}

	healthcheckOptions.registerFlags(healthcheckCmd)
	return healthcheckCmd
}

func (options *HealthcheckOptions) registerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&options.URL, "url", "", "Health URL to probe. (default http://<host>:<port>/health, loopback for wildcard hosts)")
	cmd.Flags().DurationVar(&options.Timeout, "timeout", 2*time.Second, "Request timeout.")
}

// defaultHealthURL points at the configured listener. Wildcard binds are
// reached over IPv4 loopback.
func defaultHealthURL(cfg config.Config) (string, error) {
	if cfg.Server.Port == 0 {
		return "", fmt.Errorf("port 0 is not probeable, pass --url")
	}
	host := cfg.Server.Host
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(cfg.Server.Port)) + "/health", nil
}

func runHealthcheck(cmd *cobra.Command, globalOptions *GlobalOptions, options *HealthcheckOptions) error {
	url := options.URL
	if url == "" {
		cfg, err := globalOptions.loadConfig(cmd)
		if err != nil {
			return err
		}
		if url, err = defaultHealthURL(cfg); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("invalid health URL %q: %w", url, err)
	}

	client := &http.Client{Timeout: options.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrUnhealthy, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %d", shared.ErrUnhealthy, url, resp.StatusCode)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "healthy")
	return nil
}
