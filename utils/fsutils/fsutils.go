// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package fsutils

//go:generate mockgen -destination=../../mocks/mock_utils/mock_fsutils/mock_fsutils.go github.com/scaleworks/ebs-autoscaler/utils/fsutils Stats

import (
	"context"

	"github.com/shirou/gopsutil/v3/disk"

	. "github.com/scaleworks/ebs-autoscaler/logging"
	"github.com/scaleworks/ebs-autoscaler/utils/errors"
)

// Usage holds the mountpoint statistics the monitor cares about.
type Usage struct {
	TotalBytes  uint64
	UsedBytes   uint64
	UsedPercent float64
}

// Stats reads filesystem usage for mounted paths.
type Stats interface {
	Usage(ctx context.Context, mountpoint string) (*Usage, error)
}

type stats struct{}

// NewStats returns a Stats backed by the host's mount table.
func NewStats() Stats {
	return &stats{}
}

func (s *stats) Usage(ctx context.Context, mountpoint string) (*Usage, error) {
	Logc(ctx).WithField("mountpoint", mountpoint).Debug(">>>> fsutils.Usage")
	defer Logc(ctx).Debug("<<<< fsutils.Usage")

	stat, err := disk.UsageWithContext(ctx, mountpoint)
	if err != nil {
		return nil, errors.WrapWithTransientError(err, "could not stat mountpoint %s", mountpoint)
	}

	return &Usage{
		TotalBytes:  stat.Total,
		UsedBytes:   stat.Used,
		UsedPercent: stat.UsedPercent,
	}, nil
}
