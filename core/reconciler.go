// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package core

import (
	"context"

	. "github.com/scaleworks/ebs-autoscaler/logging"
	"github.com/scaleworks/ebs-autoscaler/pkg/capacity"
	"github.com/scaleworks/ebs-autoscaler/utils/devices"
	"github.com/scaleworks/ebs-autoscaler/utils/models"
)

// Reconciliation compares the configured growth step against headroom the cloud volume
// already has beyond its partitions.
type Reconciliation struct {
	VolumeTotalGB      float64
	FreeSpaceGB        float64
	AdditionalNeededGB int64
	TargetSizeGB       int64
	ModifyNeeded       bool
}

// Reconciler computes how much cloud growth, if any, a scaling decision actually requires.
type Reconciler struct {
	inspector devices.Inspector
}

// NewReconciler returns a Reconciler reading device sizes through the given inspector.
func NewReconciler(inspector devices.Inspector) *Reconciler {
	return &Reconciler{inspector: inspector}
}

// Reconcile measures the root device and its partitions and nets the configured increase
// against unpartitioned headroom. When the headroom already covers the increase, no cloud
// modification is needed and the target is the current volume size.
func (r *Reconciler) Reconcile(
	ctx context.Context, record models.VolumeRecord, increaseGB int64,
) (*Reconciliation, error) {
	devicePath := record.DevicePath()

	volumeBytes, err := r.inspector.DeviceSize(ctx, devicePath)
	if err != nil {
		return nil, err
	}

	partitionPaths, err := r.inspector.PartitionPaths(ctx, devicePath)
	if err != nil {
		return nil, err
	}

	partitionBytes, err := r.inspector.PartitionSizes(ctx, partitionPaths)
	if err != nil {
		return nil, err
	}

	volumeTotalGB := capacity.BytesToGiB(volumeBytes)
	freeSpaceGB := volumeTotalGB - capacity.BytesToGiB(partitionBytes)
	additionalNeededGB := capacity.CeilGiB(float64(increaseGB) - freeSpaceGB)

	reconciliation := &Reconciliation{
		VolumeTotalGB:      volumeTotalGB,
		FreeSpaceGB:        freeSpaceGB,
		AdditionalNeededGB: additionalNeededGB,
	}
	if additionalNeededGB > 0 {
		reconciliation.ModifyNeeded = true
		reconciliation.TargetSizeGB = capacity.CeilGiB(volumeTotalGB + float64(additionalNeededGB))
	} else {
		reconciliation.TargetSizeGB = capacity.CeilGiB(volumeTotalGB)
	}

	Logc(ctx).WithFields(LogFields{
		"volumeID":           record.VolumeID,
		"volumeTotalGB":      volumeTotalGB,
		"freeSpaceGB":        freeSpaceGB,
		"additionalNeededGB": additionalNeededGB,
		"targetSizeGB":       reconciliation.TargetSizeGB,
		"modifyNeeded":       reconciliation.ModifyNeeded,
	}).Debug("Reconciled free space against growth step.")

	return reconciliation, nil
}
