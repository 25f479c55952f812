// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package core

import (
	"context"
	"time"

	"github.com/scaleworks/ebs-autoscaler/config"
	. "github.com/scaleworks/ebs-autoscaler/logging"
	"github.com/scaleworks/ebs-autoscaler/metrics"
	"github.com/scaleworks/ebs-autoscaler/utils/models"
)

// Notifier delivers the end-of-sweep scale report.
type Notifier interface {
	NotifyScaleReport(ctx context.Context, rows []models.ScaleReportRow)
}

// Autoscaler sweeps all watched volumes sequentially, scaling each one that crossed the
// fill threshold. A volume's failure never stops the sweep; the per-interval rerun is the
// only retry mechanism.
type Autoscaler struct {
	config  *config.Config
	records []models.VolumeRecord

	monitor    *Monitor
	reconciler *Reconciler
	resizer    *CloudResizer
	growth     *GrowthExecutor
	notifier   Notifier
}

// NewAutoscaler wires the pipeline components into a control loop.
func NewAutoscaler(
	cfg *config.Config, records []models.VolumeRecord,
	monitor *Monitor, reconciler *Reconciler, resizer *CloudResizer,
	growth *GrowthExecutor, notifier Notifier,
) *Autoscaler {
	return &Autoscaler{
		config:     cfg,
		records:    records,
		monitor:    monitor,
		reconciler: reconciler,
		resizer:    resizer,
		growth:     growth,
		notifier:   notifier,
	}
}

// Run performs sweeps until the context is canceled. In non-daemon mode it returns after
// a single sweep.
func (a *Autoscaler) Run(ctx context.Context, daemon bool) error {
	for {
		a.Sweep(GenerateRequestContext(ctx, "", ContextSourcePeriodic))

		if !daemon {
			return nil
		}

		Logc(ctx).Infof("Checking again in %s.", a.config.Interval.Round(time.Second))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(a.config.Interval):
		}
	}
}

// Sweep evaluates every watched volume once and sends a report if anything was scaled.
func (a *Autoscaler) Sweep(ctx context.Context) {
	metrics.IncSweeps()

	var rows []models.ScaleReportRow
	for _, record := range a.records {
		if a.config.IsExcluded(record.VolumeID) {
			continue
		}

		row, err := a.scaleVolume(ctx, record)
		if err != nil {
			metrics.IncScaleFailures()
			Logc(ctx).WithFields(LogFields{
				"volumeID":   record.VolumeID,
				"mountpoint": record.Mountpoint,
			}).WithError(err).Error("Could not scale volume, will retry next interval.")
			continue
		}
		if row != nil {
			metrics.IncVolumesScaled()
			rows = append(rows, *row)
		}
	}

	if len(rows) > 0 {
		a.notifier.NotifyScaleReport(ctx, rows)
	}
}

// scaleVolume runs the pipeline for one volume. A nil row with nil error means no scaling
// was needed.
func (a *Autoscaler) scaleVolume(
	ctx context.Context, record models.VolumeRecord,
) (*models.ScaleReportRow, error) {
	decision := a.monitor.Evaluate(ctx, record)
	if !decision.Needed {
		return nil, nil
	}

	Logc(ctx).WithFields(LogFields{
		"volumeID":     record.VolumeID,
		"mountpoint":   record.Mountpoint,
		"usagePercent": decision.UsagePercent,
	}).Info("Volume crossed usage threshold, scaling.")

	reconciliation, err := a.reconciler.Reconcile(ctx, record, a.config.IncreaseGB)
	if err != nil {
		return nil, err
	}

	outcome, err := a.resizer.EnsureVolumeSize(ctx, record.VolumeID, reconciliation.TargetSizeGB)
	if err != nil {
		return nil, err
	}
	if outcome.Requested {
		metrics.IncModificationRequests()
	}

	newPartitionGB, err := a.growth.Grow(ctx, record, outcome.FinalSizeGB)
	if err != nil {
		return nil, err
	}

	previousGB := int64(reconciliation.VolumeTotalGB)
	return &models.ScaleReportRow{
		VolumeID:           record.VolumeID,
		Mountpoint:         record.Mountpoint,
		PreviousSizeGB:     previousGB,
		ExpandedByGB:       outcome.FinalSizeGB - previousGB,
		NewPartitionSizeGB: newPartitionGB,
		NewVolumeSizeGB:    outcome.FinalSizeGB,
	}, nil
}
