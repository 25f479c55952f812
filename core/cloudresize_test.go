// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/scaleworks/ebs-autoscaler/awsapi"
	mockawsapi "github.com/scaleworks/ebs-autoscaler/mocks/mock_awsapi"
	"github.com/scaleworks/ebs-autoscaler/utils/errors"
)

const testVolumeID = "vol-0123456789abcdef0"

func fastResizer(ebs awsapi.EBS) *CloudResizer {
	return NewCloudResizerWithBudget(ebs, time.Millisecond, DefaultModificationPollAttempts)
}

func TestEnsureVolumeSize_ShortCircuit(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockEBS := mockawsapi.NewMockEBS(mockCtrl)

	// Already at target and in-use: no modification call of any kind.
	mockEBS.EXPECT().GetVolume(gomock.Any(), testVolumeID).
		Return(&awsapi.Volume{VolumeID: testVolumeID, SizeGiB: 110, State: awsapi.VolumeStateInUse}, nil)

	outcome, err := fastResizer(mockEBS).EnsureVolumeSize(context.Background(), testVolumeID, 110)

	require.NoError(t, err)
	assert.False(t, outcome.Requested)
	assert.True(t, outcome.Success)
	assert.Equal(t, int64(110), outcome.FinalSizeGB)
}

func TestEnsureVolumeSize_ModifyAndPoll(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockEBS := mockawsapi.NewMockEBS(mockCtrl)

	mockEBS.EXPECT().GetVolume(gomock.Any(), testVolumeID).
		Return(&awsapi.Volume{VolumeID: testVolumeID, SizeGiB: 100, State: awsapi.VolumeStateInUse}, nil)
	mockEBS.EXPECT().GetVolumeModification(gomock.Any(), testVolumeID).
		Return(nil, errors.NotFoundError("no modification found"))
	mockEBS.EXPECT().ModifyVolume(gomock.Any(), testVolumeID, int64(110)).Return(nil)

	// Three polls see the modification in flight, the fourth sees completion: exactly
	// four progress queries, no more.
	gomock.InOrder(
		mockEBS.EXPECT().GetVolumeModification(gomock.Any(), testVolumeID).
			Return(&awsapi.VolumeModification{State: awsapi.ModificationStateOptimizing}, nil).Times(3),
		mockEBS.EXPECT().GetVolumeModification(gomock.Any(), testVolumeID).
			Return(&awsapi.VolumeModification{State: awsapi.ModificationStateCompleted}, nil),
	)

	mockEBS.EXPECT().GetVolume(gomock.Any(), testVolumeID).
		Return(&awsapi.Volume{VolumeID: testVolumeID, SizeGiB: 110, State: awsapi.VolumeStateInUse}, nil)

	outcome, err := fastResizer(mockEBS).EnsureVolumeSize(context.Background(), testVolumeID, 110)

	require.NoError(t, err)
	assert.True(t, outcome.Requested)
	assert.True(t, outcome.Success)
	assert.Equal(t, int64(110), outcome.FinalSizeGB)
}

func TestEnsureVolumeSize_AdoptsInFlightModification(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockEBS := mockawsapi.NewMockEBS(mockCtrl)

	mockEBS.EXPECT().GetVolume(gomock.Any(), testVolumeID).
		Return(&awsapi.Volume{VolumeID: testVolumeID, SizeGiB: 100, State: awsapi.VolumeStateInUse}, nil)
	mockEBS.EXPECT().GetVolumeModification(gomock.Any(), testVolumeID).
		Return(&awsapi.VolumeModification{State: awsapi.ModificationStateModifying}, nil)
	// No ModifyVolume expectation: a second concurrent modification is never requested.
	mockEBS.EXPECT().GetVolumeModification(gomock.Any(), testVolumeID).
		Return(&awsapi.VolumeModification{State: awsapi.ModificationStateCompleted}, nil)
	mockEBS.EXPECT().GetVolume(gomock.Any(), testVolumeID).
		Return(&awsapi.Volume{VolumeID: testVolumeID, SizeGiB: 110, State: awsapi.VolumeStateInUse}, nil)

	outcome, err := fastResizer(mockEBS).EnsureVolumeSize(context.Background(), testVolumeID, 110)

	require.NoError(t, err)
	assert.False(t, outcome.Requested)
	assert.True(t, outcome.Success)
}

func TestEnsureVolumeSize_ModificationFailedStopsPollingImmediately(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockEBS := mockawsapi.NewMockEBS(mockCtrl)

	mockEBS.EXPECT().GetVolume(gomock.Any(), testVolumeID).
		Return(&awsapi.Volume{VolumeID: testVolumeID, SizeGiB: 100, State: awsapi.VolumeStateInUse}, nil)
	mockEBS.EXPECT().GetVolumeModification(gomock.Any(), testVolumeID).
		Return(nil, errors.NotFoundError("no modification found"))
	mockEBS.EXPECT().ModifyVolume(gomock.Any(), testVolumeID, int64(110)).Return(nil)
	// One failed poll, then nothing: no further queries after a terminal state.
	mockEBS.EXPECT().GetVolumeModification(gomock.Any(), testVolumeID).
		Return(&awsapi.VolumeModification{
			State:         awsapi.ModificationStateFailed,
			StatusMessage: "insufficient capacity",
		}, nil)

	_, err := fastResizer(mockEBS).EnsureVolumeSize(context.Background(), testVolumeID, 110)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient capacity")
	assert.False(t, errors.IsTimeoutError(err))
}

func TestEnsureVolumeSize_PollBudgetExhausted(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockEBS := mockawsapi.NewMockEBS(mockCtrl)

	mockEBS.EXPECT().GetVolume(gomock.Any(), testVolumeID).
		Return(&awsapi.Volume{VolumeID: testVolumeID, SizeGiB: 100, State: awsapi.VolumeStateInUse}, nil)
	mockEBS.EXPECT().GetVolumeModification(gomock.Any(), testVolumeID).
		Return(nil, errors.NotFoundError("no modification found"))
	mockEBS.EXPECT().ModifyVolume(gomock.Any(), testVolumeID, int64(110)).Return(nil)
	// The full budget of polls, every one still in flight.
	mockEBS.EXPECT().GetVolumeModification(gomock.Any(), testVolumeID).
		Return(&awsapi.VolumeModification{State: awsapi.ModificationStateModifying}, nil).
		Times(DefaultModificationPollAttempts)

	_, err := fastResizer(mockEBS).EnsureVolumeSize(context.Background(), testVolumeID, 110)

	require.Error(t, err)
	assert.True(t, errors.IsTimeoutError(err))
}

func TestEnsureVolumeSize_ModifyRejected(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockEBS := mockawsapi.NewMockEBS(mockCtrl)

	mockEBS.EXPECT().GetVolume(gomock.Any(), testVolumeID).
		Return(&awsapi.Volume{VolumeID: testVolumeID, SizeGiB: 100, State: awsapi.VolumeStateInUse}, nil)
	mockEBS.EXPECT().GetVolumeModification(gomock.Any(), testVolumeID).
		Return(nil, errors.NotFoundError("no modification found"))
	mockEBS.EXPECT().ModifyVolume(gomock.Any(), testVolumeID, int64(110)).
		Return(errors.TransientError("modification rate limit exceeded"))

	_, err := fastResizer(mockEBS).EnsureVolumeSize(context.Background(), testVolumeID, 110)

	assert.Error(t, err)
}

func TestEnsureVolumeSize_VerifyBelowTarget(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockEBS := mockawsapi.NewMockEBS(mockCtrl)

	mockEBS.EXPECT().GetVolume(gomock.Any(), testVolumeID).
		Return(&awsapi.Volume{VolumeID: testVolumeID, SizeGiB: 100, State: awsapi.VolumeStateInUse}, nil)
	mockEBS.EXPECT().GetVolumeModification(gomock.Any(), testVolumeID).
		Return(nil, errors.NotFoundError("no modification found"))
	mockEBS.EXPECT().ModifyVolume(gomock.Any(), testVolumeID, int64(110)).Return(nil)
	mockEBS.EXPECT().GetVolumeModification(gomock.Any(), testVolumeID).
		Return(&awsapi.VolumeModification{State: awsapi.ModificationStateCompleted}, nil)
	mockEBS.EXPECT().GetVolume(gomock.Any(), testVolumeID).
		Return(&awsapi.Volume{VolumeID: testVolumeID, SizeGiB: 105, State: awsapi.VolumeStateInUse}, nil)

	_, err := fastResizer(mockEBS).EnsureVolumeSize(context.Background(), testVolumeID, 110)

	assert.Error(t, err)
}

func TestEnsureVolumeSize_VerifyAboveTargetSucceeds(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockEBS := mockawsapi.NewMockEBS(mockCtrl)

	mockEBS.EXPECT().GetVolume(gomock.Any(), testVolumeID).
		Return(&awsapi.Volume{VolumeID: testVolumeID, SizeGiB: 100, State: awsapi.VolumeStateInUse}, nil)
	mockEBS.EXPECT().GetVolumeModification(gomock.Any(), testVolumeID).
		Return(nil, errors.NotFoundError("no modification found"))
	mockEBS.EXPECT().ModifyVolume(gomock.Any(), testVolumeID, int64(110)).Return(nil)
	mockEBS.EXPECT().GetVolumeModification(gomock.Any(), testVolumeID).
		Return(&awsapi.VolumeModification{State: awsapi.ModificationStateCompleted}, nil)
	mockEBS.EXPECT().GetVolume(gomock.Any(), testVolumeID).
		Return(&awsapi.Volume{VolumeID: testVolumeID, SizeGiB: 120, State: awsapi.VolumeStateInUse}, nil)

	outcome, err := fastResizer(mockEBS).EnsureVolumeSize(context.Background(), testVolumeID, 110)

	require.NoError(t, err)
	assert.Equal(t, int64(120), outcome.FinalSizeGB)
}

func TestEnsureVolumeSize_GetVolumeFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockEBS := mockawsapi.NewMockEBS(mockCtrl)

	mockEBS.EXPECT().GetVolume(gomock.Any(), testVolumeID).
		Return(nil, errors.TransientError("request limit exceeded"))

	_, err := fastResizer(mockEBS).EnsureVolumeSize(context.Background(), testVolumeID, 110)

	assert.Error(t, err)
}
