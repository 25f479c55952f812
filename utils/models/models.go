// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package models

// VolumeRecord identifies one EBS volume attached to this instance and where it surfaces
// locally. Records are loaded once at startup and never mutated during sweeps.
type VolumeRecord struct {
	VolumeID      string `json:"volume_id"`
	DeviceName    string `json:"device_name"`
	Mountpoint    string `json:"mountpoint"`
	PartitionPath string `json:"partition_path"`
}

// DevicePath returns the whole-device path for the record's device name.
func (v VolumeRecord) DevicePath() string {
	return "/dev/" + v.DeviceName
}

// ScalingDecision is the Usage Monitor's verdict for one volume in one sweep.
type ScalingDecision struct {
	Needed        bool
	UsagePercent  float64
	NaiveTargetGB float64
}

// ResizeOutcome summarizes one completed scaling attempt.
type ResizeOutcome struct {
	Requested   bool
	FinalSizeGB int64
	Success     bool
}

// ScaleReportRow is one line of the end-of-sweep notification.
type ScaleReportRow struct {
	VolumeID           string
	Mountpoint         string
	PreviousSizeGB     int64
	ExpandedByGB       int64
	NewPartitionSizeGB int64
	NewVolumeSizeGB    int64
}
