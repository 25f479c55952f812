// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

// Package core implements the scaling decision and execution pipeline: usage evaluation,
// free-space reconciliation, the asynchronous cloud resize protocol, local partition and
// filesystem growth, and the control loop that sweeps all watched volumes.
package core

import (
	"context"

	. "github.com/scaleworks/ebs-autoscaler/logging"
	"github.com/scaleworks/ebs-autoscaler/pkg/capacity"
	"github.com/scaleworks/ebs-autoscaler/utils/fsutils"
	"github.com/scaleworks/ebs-autoscaler/utils/models"
)

// Monitor decides whether a volume's filesystem usage warrants growth.
type Monitor struct {
	stats      fsutils.Stats
	threshold  float64
	increaseGB int64
}

// NewMonitor returns a Monitor using the given fill threshold (percent) and growth step.
func NewMonitor(stats fsutils.Stats, threshold float64, increaseGB int64) *Monitor {
	return &Monitor{
		stats:      stats,
		threshold:  threshold,
		increaseGB: increaseGB,
	}
}

// Evaluate stats the record's mountpoint and returns the scaling decision. A failed stat
// is treated as "no scaling needed" and logged; the next sweep will re-evaluate.
func (m *Monitor) Evaluate(ctx context.Context, record models.VolumeRecord) models.ScalingDecision {
	usage, err := m.stats.Usage(ctx, record.Mountpoint)
	if err != nil {
		Logc(ctx).WithFields(LogFields{
			"volumeID":   record.VolumeID,
			"mountpoint": record.Mountpoint,
		}).WithError(err).Error("Could not read filesystem usage.")
		return models.ScalingDecision{}
	}

	currentTotalGB := capacity.BytesToGiB(int64(usage.TotalBytes))
	decision := models.ScalingDecision{
		Needed:        usage.UsedPercent > m.threshold,
		UsagePercent:  usage.UsedPercent,
		NaiveTargetGB: currentTotalGB + float64(m.increaseGB),
	}

	Logc(ctx).WithFields(LogFields{
		"volumeID":     record.VolumeID,
		"mountpoint":   record.Mountpoint,
		"usagePercent": decision.UsagePercent,
		"threshold":    m.threshold,
		"needed":       decision.Needed,
	}).Debug("Evaluated volume usage.")

	return decision
}
