// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/scaleworks/ebs-autoscaler/config"
	"github.com/scaleworks/ebs-autoscaler/logging"
)

var (
	Debug      bool
	LogLevel   string
	LogFormat  string
	ConfigPath string
)

var RootCmd = &cobra.Command{
	SilenceUsage: true,
	Use:          "ebs-autoscaler",
	Short:        "Keeps EBS volumes ahead of local filesystem demand",
	Long: `Watches mounted EBS-backed filesystems and, when one crosses its fill threshold,
grows the cloud volume and then the host partition and filesystem behind it.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if err := logging.InitLogLevel(Debug, LogLevel); err != nil {
			return err
		}
		return logging.InitLogFormat(LogFormat)
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&Debug, "debug", "d", false, "Debug output")
	RootCmd.PersistentFlags().StringVarP(&LogLevel, "log-level", "l", "info",
		"Logging level (trace, debug, info, warn, error, fatal)")
	RootCmd.PersistentFlags().StringVar(&LogFormat, "log-format", "text",
		"Logging format (text, json)")
	RootCmd.PersistentFlags().StringVarP(&ConfigPath, "config", "c", config.DefaultConfigPath,
		"Path to the configuration file")
}
