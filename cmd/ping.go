// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/telekom/sparrow-ping/internal/helper"
	"github.com/telekom/sparrow-ping/internal/logger"
	"github.com/telekom/sparrow-ping/internal/ping"
	"github.com/telekom/sparrow-ping/internal/transport"
	"github.com/telekom/sparrow-ping/pkg/checks"
	"github.com/telekom/sparrow-ping/pkg/sink"
)

const (
	minInterval = time.Millisecond
	maxInterval = 32767 * time.Millisecond
)

// ErrNoReply is returned when a session finished without a single verified reply
var ErrNoReply = errors.New("no verified reply received")

// pingOptions are the options of a single ping session
type pingOptions struct {
	Count       int            `mapstructure:"count"`
	Interval    time.Duration  `mapstructure:"interval"`
	Timeout     time.Duration  `mapstructure:"timeout"`
	Size        int            `mapstructure:"size"`
	IPv6        bool           `mapstructure:"ipv6"`
	Socket      transport.Mode `mapstructure:"socket"`
	Output      sink.Format    `mapstructure:"output"`
	MetricsFile string         `mapstructure:"metrics-file"`
	RetryCount  int            `mapstructure:"retry-count"`
	RetryDelay  time.Duration  `mapstructure:"retry-delay"`
}

// NewCmdPing creates the command running one ping session
func NewCmdPing() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ping [flags] <host>",
		Short: "Send ICMP echo requests to a host",
		Long: "Send ICMP echo requests to a host and verify the echoed payload.\n" +
			"The command fails if no verified reply was received.",
		Args: cobra.ExactArgs(1),
		RunE: runPing,
	}

	flags := cmd.Flags()
	flags.IntP("count", "c", ping.DefaultCount, "number of echo requests to send")
	flags.DurationP("interval", "i", ping.DefaultDelay, "minimum interval between two requests")
	flags.DurationP("timeout", "W", ping.DefaultTimeout, "time to wait for each reply")
	flags.IntP("size", "s", ping.DefaultDataLen, "number of payload bytes per request")
	flags.BoolP("ipv6", "6", false, "use ICMPv6")
	flags.String("socket", string(transport.ModeAuto), "socket kind: auto, raw or datagram")
	flags.StringP("output", "o", string(sink.FormatText), "output format: text, json or yaml")
	flags.String("metrics-file", "", "write the session metrics in the prometheus text format to this file")
	flags.Int("retry-count", checks.DefaultRetry.Count, "number of retries of the name resolution")
	flags.Duration("retry-delay", checks.DefaultRetry.Delay, "initial delay between two name resolution retries")

	return cmd
}

// runPing runs one session to the host given as argument
func runPing(cmd *cobra.Command, args []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	var opts pingOptions
	if err := viper.Unmarshal(&opts); err != nil {
		return fmt.Errorf("failed to read options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx = logger.IntoContext(ctx, logger.NewLogger())

	host := args[0]
	summary := sink.NewSummary(host)
	metrics := sink.NewMetrics()
	sinks := []ping.Sink{summary, metrics.For(host)}
	if opts.Output == sink.FormatText {
		sinks = append(sinks, sink.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr()))
	}

	opener, err := transport.NewOpener(opts.Socket)
	if err != nil {
		return err
	}
	resolver := transport.NewResolver(helper.RetryConfig{Count: opts.RetryCount, Delay: opts.RetryDelay})
	engine := ping.NewEngine(resolver, opener, sink.Multi(sinks...))

	stats, runErr := engine.Run(ctx, opts.session(host))

	if err := summary.Write(cmd.OutOrStdout(), opts.Output); err != nil {
		return err
	}
	if opts.MetricsFile != "" {
		registry := prometheus.NewRegistry()
		registry.MustRegister(metrics.GetCollectors()...)
		if err := prometheus.WriteToTextfile(opts.MetricsFile, registry); err != nil {
			return fmt.Errorf("failed to write metrics file: %w", err)
		}
	}

	if runErr != nil {
		return runErr
	}
	if stats.Verified == 0 {
		return ErrNoReply
	}
	return nil
}

// Validate checks the option ranges
func (o *pingOptions) Validate() (err error) {
	if o.Count < 1 || o.Count > ping.MaxCount {
		err = errors.Join(err, fmt.Errorf("invalid count %d: must be between 1 and %d", o.Count, ping.MaxCount))
	}
	if o.Interval < minInterval || o.Interval > maxInterval {
		err = errors.Join(err, fmt.Errorf("invalid interval %s: must be between %s and %s", o.Interval, minInterval, maxInterval))
	}
	if o.Timeout < minInterval || o.Timeout > maxInterval {
		err = errors.Join(err, fmt.Errorf("invalid timeout %s: must be between %s and %s", o.Timeout, minInterval, maxInterval))
	}
	if o.Size < 0 || o.Size > ping.MaxDataLen {
		err = errors.Join(err, fmt.Errorf("invalid size %d: must be between 0 and %d", o.Size, ping.MaxDataLen))
	}
	if o.RetryCount < 0 {
		err = errors.Join(err, fmt.Errorf("invalid retry count %d: must not be negative", o.RetryCount))
	}
	err = errors.Join(err, o.Socket.Validate(), o.Output.Validate())
	return err
}

// session returns the session to host with a fresh echo id
func (o *pingOptions) session(host string) ping.Session {
	family := ping.IPv4
	if o.IPv6 {
		family = ping.IPv6
	}
	return ping.Session{
		Host:    host,
		Family:  family,
		Count:   o.Count,
		DataLen: o.Size,
		Delay:   o.Interval,
		Timeout: o.Timeout,
		ID:      ping.NewID(),
	}
}
