// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

// Package discovery maps locally attached NVMe block devices back to their EBS volume ids
// and remembers the mapping in a JSON cache file.
package discovery

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	. "github.com/scaleworks/ebs-autoscaler/logging"
	"github.com/scaleworks/ebs-autoscaler/utils/errors"
	"github.com/scaleworks/ebs-autoscaler/utils/exec"
	"github.com/scaleworks/ebs-autoscaler/utils/fsutils"
	"github.com/scaleworks/ebs-autoscaler/utils/models"
)

const (
	lsblkTimeout   = 15 * time.Second
	ebsnvmeTimeout = 10 * time.Second
	volumeIDMarker = "Volume ID: "
)

type blockDevice struct {
	Name       string        `json:"name"`
	Path       string        `json:"path"`
	Mountpoint string        `json:"mountpoint"`
	Children   []blockDevice `json:"children"`
}

type lsblkOutput struct {
	BlockDevices []blockDevice `json:"blockdevices"`
}

// Discoverer enumerates EBS-backed block devices on this host.
type Discoverer struct {
	command exec.Command
	stats   fsutils.Stats
}

// NewDiscoverer returns a Discoverer that shells out to lsblk and ebsnvme-id.
func NewDiscoverer(command exec.Command, stats fsutils.Stats) *Discoverer {
	return &Discoverer{command: command, stats: stats}
}

// Discover walks the lsblk device tree and returns one VolumeRecord per EBS volume that
// surfaces as a mounted filesystem. For partitioned devices the largest mounted partition
// is chosen; unmounted devices and non-EBS devices are skipped.
func (d *Discoverer) Discover(ctx context.Context) ([]models.VolumeRecord, error) {
	Logc(ctx).Debug(">>>> discovery.Discover")
	defer Logc(ctx).Debug("<<<< discovery.Discover")

	out, err := d.command.ExecuteWithTimeout(ctx, "lsblk", lsblkTimeout, true,
		"-b", "-o", "NAME,PATH,MOUNTPOINT", "-J")
	if err != nil {
		return nil, errors.WrapWithTransientError(err, "lsblk failed")
	}

	var parsed lsblkOutput
	if err = json.Unmarshal(out, &parsed); err != nil {
		return nil, errors.WrapWithTransientError(err, "could not parse lsblk output")
	}

	var records []models.VolumeRecord
	for _, device := range parsed.BlockDevices {
		var record *models.VolumeRecord
		if len(device.Children) > 0 {
			record = d.recordFromPartitionedDevice(ctx, device)
		} else {
			record = d.recordFromWholeDevice(ctx, device)
		}
		if record != nil {
			records = append(records, *record)
		}
	}

	Logc(ctx).WithField("count", len(records)).Info("Discovered EBS volumes.")
	return records, nil
}

func (d *Discoverer) recordFromPartitionedDevice(
	ctx context.Context, device blockDevice,
) *models.VolumeRecord {
	var selected *blockDevice
	var maxBytes uint64

	for i := range device.Children {
		child := &device.Children[i]
		if child.Mountpoint == "" {
			Logc(ctx).WithField("partition", child.Name).Warning("Partition is not mounted, skipping.")
			continue
		}
		usage, err := d.stats.Usage(ctx, child.Mountpoint)
		if err != nil {
			Logc(ctx).WithField("partition", child.Name).WithError(err).Error(
				"Could not stat partition mountpoint.")
			continue
		}
		if selected == nil || usage.TotalBytes > maxBytes {
			selected = child
			maxBytes = usage.TotalBytes
		}
	}

	if selected == nil {
		return nil
	}

	// ebsnvme-id -v prints "Volume ID: vol-..." for partition paths.
	out, err := d.command.ExecuteWithTimeout(ctx, "ebsnvme-id", ebsnvmeTimeout, true,
		"-v", selected.Path)
	if err != nil {
		Logc(ctx).WithField("partition", selected.Path).WithError(err).Error(
			"Could not resolve volume id, device is not an EBS volume.")
		return nil
	}

	volumeID, err := parseVolumeID(string(out))
	if err != nil {
		Logc(ctx).WithField("partition", selected.Path).WithError(err).Error(
			"Could not parse ebsnvme-id output.")
		return nil
	}

	return &models.VolumeRecord{
		VolumeID:      volumeID,
		DeviceName:    device.Name,
		Mountpoint:    selected.Mountpoint,
		PartitionPath: selected.Path,
	}
}

func (d *Discoverer) recordFromWholeDevice(
	ctx context.Context, device blockDevice,
) *models.VolumeRecord {
	if device.Mountpoint == "" {
		return nil
	}

	out, err := d.command.ExecuteWithTimeout(ctx, "ebsnvme-id", ebsnvmeTimeout, true, device.Path)
	if err != nil {
		Logc(ctx).WithField("device", device.Path).WithError(err).Error(
			"Could not resolve volume id, device is not an EBS volume.")
		return nil
	}

	return &models.VolumeRecord{
		VolumeID:      strings.TrimSpace(string(out)),
		DeviceName:    device.Name,
		Mountpoint:    device.Mountpoint,
		PartitionPath: device.Path,
	}
}

func parseVolumeID(out string) (string, error) {
	_, after, found := strings.Cut(out, volumeIDMarker)
	if !found {
		return "", errors.InvalidInputError("no volume id in output: %s", out)
	}
	return strings.TrimSpace(after), nil
}
