// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package core

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/scaleworks/ebs-autoscaler/awsapi"
	. "github.com/scaleworks/ebs-autoscaler/logging"
	"github.com/scaleworks/ebs-autoscaler/utils/errors"
	"github.com/scaleworks/ebs-autoscaler/utils/models"
)

const (
	// DefaultModificationPollInterval paces modification progress queries.
	DefaultModificationPollInterval = 60 * time.Second

	// DefaultModificationPollAttempts bounds modification progress queries per attempt.
	DefaultModificationPollAttempts = 30
)

// CloudResizer drives one EBS volume to a target size through the asynchronous EC2
// modification protocol: check, request (or adopt an in-flight modification), poll, verify.
type CloudResizer struct {
	ebs awsapi.EBS

	pollInterval time.Duration
	pollAttempts uint64
}

// NewCloudResizer returns a CloudResizer with the default polling budget.
func NewCloudResizer(ebs awsapi.EBS) *CloudResizer {
	return &CloudResizer{
		ebs:          ebs,
		pollInterval: DefaultModificationPollInterval,
		pollAttempts: DefaultModificationPollAttempts,
	}
}

// NewCloudResizerWithBudget returns a CloudResizer with an explicit polling budget.
func NewCloudResizerWithBudget(
	ebs awsapi.EBS, pollInterval time.Duration, pollAttempts uint64,
) *CloudResizer {
	return &CloudResizer{
		ebs:          ebs,
		pollInterval: pollInterval,
		pollAttempts: pollAttempts,
	}
}

// EnsureVolumeSize makes the volume at least targetGB GiB large and reports what happened.
// A volume already at target in state in-use short-circuits without any modification call,
// so retrying after a mid-flight crash is safe. A modification already in flight is adopted
// rather than doubled. Any cloud failure ends the attempt; the next sweep re-evaluates
// from live state.
func (c *CloudResizer) EnsureVolumeSize(
	ctx context.Context, volumeID string, targetGB int64,
) (*models.ResizeOutcome, error) {
	fields := LogFields{"volumeID": volumeID, "targetGB": targetGB}

	volume, err := c.ebs.GetVolume(ctx, volumeID)
	if err != nil {
		return nil, err
	}
	fields["currentGB"] = volume.SizeGiB

	if volume.SizeGiB == targetGB && volume.State == awsapi.VolumeStateInUse {
		Logc(ctx).WithFields(fields).Debug("Volume already at target size.")
		return &models.ResizeOutcome{FinalSizeGB: volume.SizeGiB, Success: true}, nil
	}

	modifying, err := c.modificationInFlight(ctx, volumeID)
	if err != nil {
		return nil, err
	}

	requested := false
	if modifying {
		Logc(ctx).WithFields(fields).Info("Volume modification already in progress, adopting it.")
	} else {
		if err = c.ebs.ModifyVolume(ctx, volumeID, targetGB); err != nil {
			return nil, err
		}
		requested = true
	}

	if err = c.pollModification(ctx, volumeID); err != nil {
		return nil, err
	}

	// Verify against live volume state rather than trusting the modification record.
	if volume, err = c.ebs.GetVolume(ctx, volumeID); err != nil {
		return nil, err
	}
	if volume.SizeGiB < targetGB {
		return nil, errors.TransientError(
			"volume %s completed modification at %d GiB, below target %d GiB",
			volumeID, volume.SizeGiB, targetGB)
	}

	Logc(ctx).WithFields(fields).WithField("finalGB", volume.SizeGiB).Info("Cloud volume resized.")
	return &models.ResizeOutcome{Requested: requested, FinalSizeGB: volume.SizeGiB, Success: true}, nil
}

func (c *CloudResizer) modificationInFlight(ctx context.Context, volumeID string) (bool, error) {
	modification, err := c.ebs.GetVolumeModification(ctx, volumeID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return modification.State == awsapi.ModificationStateModifying, nil
}

// errModificationInProgress marks a poll that saw the modification still running.
var errModificationInProgress = errors.New("volume modification still in progress")

func (c *CloudResizer) pollModification(ctx context.Context, volumeID string) error {
	var lastState string

	checkModification := func() error {
		modification, err := c.ebs.GetVolumeModification(ctx, volumeID)
		if err != nil {
			return backoff.Permanent(err)
		}
		lastState = modification.State

		switch modification.State {
		case awsapi.ModificationStateCompleted:
			return nil
		case awsapi.ModificationStateFailed:
			return backoff.Permanent(errors.TransientError(
				"volume %s modification failed: %s", volumeID, modification.StatusMessage))
		default:
			return errModificationInProgress
		}
	}
	modificationNotify := func(err error, duration time.Duration) {
		Logc(ctx).WithFields(LogFields{
			"volumeID":  volumeID,
			"state":     lastState,
			"increment": duration,
		}).Debug("Waiting for volume modification to complete.")
	}
	modificationBackoff := backoff.WithMaxRetries(
		backoff.NewConstantBackOff(c.pollInterval), c.pollAttempts-1)

	if err := backoff.RetryNotify(checkModification, modificationBackoff, modificationNotify); err != nil {
		if errors.Is(err, errModificationInProgress) {
			return errors.TimeoutError(
				"volume %s modification still %s after %d polls", volumeID, lastState, c.pollAttempts)
		}
		return err
	}
	return nil
}
