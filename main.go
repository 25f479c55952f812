// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package main

import (
	"os"

	"github.com/scaleworks/ebs-autoscaler/cli/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
