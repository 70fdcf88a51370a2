package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"sentinel-backend/internal/config"

	"github.com/spf13/cobra"
)

type ConfigInitOptions struct {
	Output string
	Force  bool
}

func NewConfigCommand(globalOptions *GlobalOptions) *cobra.Command {

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `Print the configuration the server would run with, after applying
defaults, the config file, environment variables and flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := globalOptions.loadConfig(cmd)
			if err != nil {
				return err
			}
			return cfg.WriteTOML(cmd.OutOrStdout())
		},
	}

	initOptions := &ConfigInitOptions{}
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to a TOML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, globalOptions, initOptions)
		},
	}
	initOptions.registerFlags(initCmd)

	configCmd.AddCommand(initCmd)
	return configCmd
}

func (options *ConfigInitOptions) registerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&options.Output, "output", "o", defaultConfigPath, "File to write.")
	cmd.Flags().BoolVar(&options.Force, "force", false, "Overwrite an existing file.")
}

func runConfigInit(cmd *cobra.Command, globalOptions *GlobalOptions, options *ConfigInitOptions) error {
	cfg, err := globalOptions.loadConfig(cmd)
	if err != nil {
		return err
	}

	if !options.Force {
		if _, err := os.Stat(options.Output); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", options.Output)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", options.Output, err)
		}
	}

	if err := config.SaveConfig(options.Output, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", options.Output)
	return nil
}
