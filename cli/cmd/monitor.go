// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/scaleworks/ebs-autoscaler/awsapi"
	"github.com/scaleworks/ebs-autoscaler/config"
	"github.com/scaleworks/ebs-autoscaler/core"
	"github.com/scaleworks/ebs-autoscaler/discovery"
	"github.com/scaleworks/ebs-autoscaler/internal/prechecks"
	. "github.com/scaleworks/ebs-autoscaler/logging"
	"github.com/scaleworks/ebs-autoscaler/metrics"
	"github.com/scaleworks/ebs-autoscaler/notifier"
	"github.com/scaleworks/ebs-autoscaler/utils/devices"
	"github.com/scaleworks/ebs-autoscaler/utils/exec"
	"github.com/scaleworks/ebs-autoscaler/utils/fsutils"
)

var daemonMode bool

func init() {
	monitorCmd.Flags().BoolVar(&daemonMode, "daemon", false,
		"Keep running, sweeping volumes every configured interval")
	RootCmd.AddCommand(monitorCmd)
}

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Sweep all watched volumes, scaling any that crossed the threshold",
	RunE: func(cobraCmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cobraCmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runMonitor(ctx)
	},
}

func runMonitor(ctx context.Context) error {
	ctx = GenerateRequestContext(ctx, "", ContextSourceCLI)

	cfg, err := config.Load(ConfigPath)
	if err != nil {
		return err
	}

	client, err := awsapi.NewClient(ctx, awsapi.ClientConfig{APIRegion: cfg.Region})
	if err != nil {
		return err
	}

	fs := afero.NewOsFs()
	if err = prechecks.New(fs, client).Run(ctx, ConfigPath, cfg.CachePath); err != nil {
		return err
	}

	command := exec.NewCommand()
	stats := fsutils.NewStats()
	inspector := devices.New(command)

	cache := discovery.NewCache(fs, cfg.CachePath)
	discoverer := discovery.NewDiscoverer(command, stats)
	records, err := discovery.Records(ctx, cache, discoverer)
	if err != nil {
		return err
	}

	if cfg.MetricsAddress != "" {
		go func() {
			if err := metrics.Serve(cfg.MetricsAddress); err != nil {
				Logc(ctx).WithError(err).Error("Metrics endpoint stopped.")
			}
		}()
	}

	autoscaler := core.NewAutoscaler(
		cfg, records,
		core.NewMonitor(stats, cfg.Threshold, cfg.IncreaseGB),
		core.NewReconciler(inspector),
		core.NewCloudResizer(client),
		core.NewGrowthExecutor(inspector),
		notifier.New(client, client, cfg.NotificationEnabled, cfg.EmailSender, cfg.EmailRecipients),
	)

	return autoscaler.Run(ctx, daemonMode)
}
