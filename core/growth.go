// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package core

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	. "github.com/scaleworks/ebs-autoscaler/logging"
	"github.com/scaleworks/ebs-autoscaler/pkg/capacity"
	"github.com/scaleworks/ebs-autoscaler/utils/devices"
	"github.com/scaleworks/ebs-autoscaler/utils/errors"
	"github.com/scaleworks/ebs-autoscaler/utils/models"
)

const (
	// DefaultConvergencePollInterval paces device size re-reads after a cloud resize.
	DefaultConvergencePollInterval = 5 * time.Second

	// DefaultConvergencePollAttempts bounds device size re-reads.
	DefaultConvergencePollAttempts = 12

	filesystemXFS = "xfs"
)

// GrowthExecutor propagates a finished cloud resize into the host: wait for the kernel to
// see the new device size, grow the partition if there is one, then grow the filesystem.
type GrowthExecutor struct {
	inspector devices.Inspector

	pollInterval time.Duration
	pollAttempts uint64
}

// NewGrowthExecutor returns a GrowthExecutor with the default convergence budget.
func NewGrowthExecutor(inspector devices.Inspector) *GrowthExecutor {
	return &GrowthExecutor{
		inspector:    inspector,
		pollInterval: DefaultConvergencePollInterval,
		pollAttempts: DefaultConvergencePollAttempts,
	}
}

// NewGrowthExecutorWithBudget returns a GrowthExecutor with an explicit convergence budget.
func NewGrowthExecutorWithBudget(
	inspector devices.Inspector, pollInterval time.Duration, pollAttempts uint64,
) *GrowthExecutor {
	return &GrowthExecutor{
		inspector:    inspector,
		pollInterval: pollInterval,
		pollAttempts: pollAttempts,
	}
}

// Grow brings the record's partition and filesystem up to the freshly resized device and
// returns the partition's new size in GiB. Every step is idempotent; rerunning after a
// partial failure finishes the remaining work.
func (g *GrowthExecutor) Grow(
	ctx context.Context, record models.VolumeRecord, expectedTotalGB int64,
) (int64, error) {
	devicePath := record.DevicePath()

	if err := g.awaitDeviceSize(ctx, devicePath, expectedTotalGB); err != nil {
		return 0, err
	}

	if index, ok := devices.ParsePartitionSuffix(record.PartitionPath, devicePath); ok {
		if err := g.inspector.GrowPartition(ctx, devicePath, index); err != nil {
			return 0, err
		}
	}

	if err := g.growFilesystem(ctx, record); err != nil {
		return 0, err
	}

	partitionBytes, err := g.inspector.DeviceSize(ctx, record.PartitionPath)
	if err != nil {
		return 0, err
	}
	return capacity.BytesToGiBCeil(partitionBytes), nil
}

// errDeviceNotConverged marks a poll that saw a stale device size.
var errDeviceNotConverged = errors.New("device size has not converged")

// awaitDeviceSize waits for the kernel's view of the device to catch up with the cloud.
func (g *GrowthExecutor) awaitDeviceSize(ctx context.Context, devicePath string, expectedTotalGB int64) error {
	var lastSeenGB int64

	checkSize := func() error {
		sizeBytes, err := g.inspector.DeviceSize(ctx, devicePath)
		if err != nil {
			return backoff.Permanent(err)
		}
		lastSeenGB = capacity.BytesToGiBCeil(sizeBytes)
		if lastSeenGB == expectedTotalGB {
			return nil
		}
		return errDeviceNotConverged
	}
	sizeNotify := func(err error, duration time.Duration) {
		Logc(ctx).WithFields(LogFields{
			"device":     devicePath,
			"sizeGB":     lastSeenGB,
			"expectedGB": expectedTotalGB,
			"increment":  duration,
		}).Debug("Waiting for device size to converge.")
	}
	sizeBackoff := backoff.WithMaxRetries(
		backoff.NewConstantBackOff(g.pollInterval), g.pollAttempts-1)

	if err := backoff.RetryNotify(checkSize, sizeBackoff, sizeNotify); err != nil {
		if errors.Is(err, errDeviceNotConverged) {
			return errors.TimeoutError(
				"device %s never reached %d GiB, last saw %d GiB",
				devicePath, expectedTotalGB, lastSeenGB)
		}
		return err
	}

	Logc(ctx).WithFields(LogFields{
		"device": devicePath,
		"sizeGB": lastSeenGB,
	}).Debug("Device size converged.")
	return nil
}

func (g *GrowthExecutor) growFilesystem(ctx context.Context, record models.VolumeRecord) error {
	fsType, err := g.inspector.FilesystemType(ctx, record.PartitionPath)
	if err != nil {
		return err
	}

	if fsType == filesystemXFS {
		return g.inspector.GrowXFS(ctx, record.Mountpoint)
	}
	// resize2fs handles the ext family; anything unrecognized lands here and fails loudly.
	return g.inspector.GrowExt(ctx, record.PartitionPath)
}
