// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/telekom/sparrow-ping/internal/logger"
	"github.com/telekom/sparrow-ping/pkg/monitor"
)

// NewCmdMonitor creates the command monitoring a target periodically
func NewCmdMonitor(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Ping a target periodically and expose the results",
		Long: "Ping a target periodically. The results are exposed as prometheus metrics\n" +
			"on /metrics and as json on /v1/metrics/ping.",
		Args: cobra.NoArgs,
		RunE: runMonitor(version),
	}

	flags := cmd.Flags()
	flags.String("name", "", "DNS name of this instance")
	flags.String("api-address", ":8080", "api server listening address")
	flags.String("target", "", "host name or address to ping")
	flags.Duration("check-interval", defaultCheckInterval, "interval between two ping sessions")
	flags.String("loader-file", "", "yaml file with a ping section that is reloaded periodically")
	flags.Duration("loader-interval", 0, "reload interval of the loader file, 0 reads it once")

	bindings := map[string]string{
		"name":             "name",
		"api.address":      "api-address",
		"ping.target":      "target",
		"ping.interval":    "check-interval",
		"loader.file.path": "loader-file",
		"loader.interval":  "loader-interval",
	}
	for key, flag := range bindings {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(flag)))
	}

	return cmd
}

// runMonitor runs the monitor until it receives a termination signal
func runMonitor(version string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		ctx = logger.IntoContext(ctx, logger.NewLogger())
		log := logger.FromContext(ctx)

		cfg := defaultMonitorConfig()
		if err := viper.Unmarshal(cfg); err != nil {
			return fmt.Errorf("failed to parse configuration: %w", err)
		}
		if err := cfg.Validate(ctx); err != nil {
			return err
		}

		log.InfoContext(ctx, "Starting monitor", "name", cfg.Name, "target", cfg.Ping.Target)
		m := monitor.New(cfg, version)
		if err := m.Run(ctx); err != nil {
			log.InfoContext(ctx, "Monitor stopped", "reason", err)
		}
		return nil
	}
}
