// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package devices

//go:generate mockgen -destination=../../mocks/mock_utils/mock_devices/mock_devices.go github.com/scaleworks/ebs-autoscaler/utils/devices Inspector

import (
	"context"
	osexec "os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/disk"

	. "github.com/scaleworks/ebs-autoscaler/logging"
	"github.com/scaleworks/ebs-autoscaler/utils/errors"
	"github.com/scaleworks/ebs-autoscaler/utils/exec"
)

const (
	blockdevTimeout = 10 * time.Second
	blkidTimeout    = 5 * time.Second
	growPartTimeout = 60 * time.Second
	growFSTimeout   = 5 * time.Minute
)

// Inspector reads and grows block devices, partitions, and filesystems on this host.
type Inspector interface {
	// DeviceSize returns the size of a block device in bytes.
	DeviceSize(ctx context.Context, devicePath string) (int64, error)
	// FilesystemType probes the filesystem on a device; "" means no filesystem was recognized.
	FilesystemType(ctx context.Context, devicePath string) (string, error)
	// GrowPartition expands partition index on parentDevice to fill available space.
	GrowPartition(ctx context.Context, parentDevice, index string) error
	// GrowXFS grows an XFS filesystem, addressed by its mountpoint.
	GrowXFS(ctx context.Context, mountpoint string) error
	// GrowExt grows an ext-family filesystem, addressed by its device path.
	GrowExt(ctx context.Context, devicePath string) error
	// PartitionPaths lists mounted partition device paths under rootDevice.
	PartitionPaths(ctx context.Context, rootDevice string) ([]string, error)
	// PartitionSizes sums byte sizes of the given partition device paths.
	PartitionSizes(ctx context.Context, partitionPaths []string) (int64, error)
}

type inspector struct {
	command exec.Command
}

// New returns an Inspector that shells out to the host's block device tools.
func New(command exec.Command) Inspector {
	return &inspector{command: command}
}

func (i *inspector) DeviceSize(ctx context.Context, devicePath string) (int64, error) {
	Logc(ctx).WithField("device", devicePath).Debug(">>>> devices.DeviceSize")
	defer Logc(ctx).Debug("<<<< devices.DeviceSize")

	out, err := i.command.ExecuteWithTimeout(ctx, "blockdev", blockdevTimeout, true,
		"--getsize64", devicePath)
	if err != nil {
		return 0, errors.WrapWithTransientError(err, "blockdev failed for %s", devicePath)
	}

	size, err := strconv.ParseInt(strings.TrimSpace(string(out)), 10, 64)
	if err != nil {
		return 0, errors.WrapWithTransientError(err, "could not parse blockdev output for %s", devicePath)
	}
	return size, nil
}

func (i *inspector) FilesystemType(ctx context.Context, devicePath string) (string, error) {
	Logc(ctx).WithField("device", devicePath).Debug(">>>> devices.FilesystemType")
	defer Logc(ctx).Debug("<<<< devices.FilesystemType")

	out, err := i.command.ExecuteWithTimeout(ctx, "blkid", blkidTimeout, true,
		"-o", "value", "-s", "TYPE", devicePath)
	if err != nil {
		// blkid exits 2 when the device carries no recognizable filesystem.
		var exitErr *osexec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 2 {
			Logc(ctx).WithField("device", devicePath).Warning("No filesystem type recognized on device.")
			return "", nil
		}
		return "", errors.WrapWithTransientError(err, "blkid failed for %s", devicePath)
	}

	fsType := strings.TrimSpace(string(out))
	Logc(ctx).WithFields(LogFields{"device": devicePath, "fsType": fsType}).Debug("Probed filesystem type.")
	return fsType, nil
}

func (i *inspector) GrowPartition(ctx context.Context, parentDevice, index string) error {
	fields := LogFields{"parentDevice": parentDevice, "partition": index}
	Logc(ctx).WithFields(fields).Debug(">>>> devices.GrowPartition")
	defer Logc(ctx).Debug("<<<< devices.GrowPartition")

	out, err := i.command.ExecuteWithTimeout(ctx, "growpart", growPartTimeout, true,
		parentDevice, index)
	if err != nil {
		// growpart exits 1 with NOCHANGE when the partition already fills the device.
		if strings.Contains(string(out), "NOCHANGE") {
			Logc(ctx).WithFields(fields).Debug("Partition already fills device.")
			return nil
		}
		return errors.WrapWithTransientError(err, "growpart failed for %s %s", parentDevice, index)
	}

	Logc(ctx).WithFields(fields).Info("Grew partition.")
	return nil
}

func (i *inspector) GrowXFS(ctx context.Context, mountpoint string) error {
	Logc(ctx).WithField("mountpoint", mountpoint).Debug(">>>> devices.GrowXFS")
	defer Logc(ctx).Debug("<<<< devices.GrowXFS")

	// xfs_growfs addresses the filesystem by mountpoint, not device.
	if _, err := i.command.ExecuteWithTimeout(ctx, "xfs_growfs", growFSTimeout, true,
		"-d", mountpoint); err != nil {
		return errors.WrapWithTransientError(err, "xfs_growfs failed for %s", mountpoint)
	}

	Logc(ctx).WithField("mountpoint", mountpoint).Info("Grew XFS filesystem.")
	return nil
}

func (i *inspector) GrowExt(ctx context.Context, devicePath string) error {
	Logc(ctx).WithField("device", devicePath).Debug(">>>> devices.GrowExt")
	defer Logc(ctx).Debug("<<<< devices.GrowExt")

	if _, err := i.command.ExecuteWithTimeout(ctx, "resize2fs", growFSTimeout, true,
		devicePath); err != nil {
		return errors.WrapWithTransientError(err, "resize2fs failed for %s", devicePath)
	}

	Logc(ctx).WithField("device", devicePath).Info("Grew ext filesystem.")
	return nil
}

func (i *inspector) PartitionPaths(ctx context.Context, rootDevice string) ([]string, error) {
	Logc(ctx).WithField("rootDevice", rootDevice).Debug(">>>> devices.PartitionPaths")
	defer Logc(ctx).Debug("<<<< devices.PartitionPaths")

	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, errors.WrapWithTransientError(err, "could not list partitions")
	}

	var paths []string
	for _, p := range partitions {
		if strings.HasPrefix(p.Device, rootDevice) {
			paths = append(paths, p.Device)
		}
	}
	return paths, nil
}

func (i *inspector) PartitionSizes(ctx context.Context, partitionPaths []string) (int64, error) {
	var total int64
	for _, path := range partitionPaths {
		size, err := i.DeviceSize(ctx, path)
		if err != nil {
			return 0, err
		}
		total += size
	}
	return total, nil
}

// ParsePartitionSuffix splits a partition path into its parent device and partition index.
// It returns ok=false when the path names the whole device. NVMe partition paths carry a
// "p" separator (/dev/nvme1n1p1); traditional paths append the index directly (/dev/xvdf1).
func ParsePartitionSuffix(partitionPath, devicePath string) (index string, ok bool) {
	if partitionPath == devicePath || !strings.HasPrefix(partitionPath, devicePath) {
		return "", false
	}

	suffix := strings.TrimPrefix(partitionPath, devicePath)
	suffix = strings.TrimPrefix(suffix, "p")
	if suffix == "" {
		return "", false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return suffix, true
}
