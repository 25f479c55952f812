// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdevices "github.com/scaleworks/ebs-autoscaler/mocks/mock_utils/mock_devices"
	"github.com/scaleworks/ebs-autoscaler/utils/errors"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name                 string
		volumeGB             int64
		partitionsGB         int64
		increaseGB           int64
		expectedModify       bool
		expectedTargetGB     int64
		expectedAdditionalGB int64
	}{
		{
			// 100 GiB volume, 90 GiB partitioned, want 20 more: 10 free, need 10 from the cloud.
			name:                 "headroom smaller than increase",
			volumeGB:             100,
			partitionsGB:         90,
			increaseGB:           20,
			expectedModify:       true,
			expectedTargetGB:     110,
			expectedAdditionalGB: 10,
		},
		{
			// 100 GiB volume, 70 GiB partitioned: 30 free already covers the 20 GiB step.
			name:             "headroom covers increase",
			volumeGB:         100,
			partitionsGB:     70,
			increaseGB:       20,
			expectedModify:   false,
			expectedTargetGB: 100,
		},
		{
			name:                 "no headroom",
			volumeGB:             100,
			partitionsGB:         100,
			increaseGB:           20,
			expectedModify:       true,
			expectedTargetGB:     120,
			expectedAdditionalGB: 20,
		},
		{
			name:             "headroom exactly equals increase",
			volumeGB:         100,
			partitionsGB:     80,
			increaseGB:       20,
			expectedModify:   false,
			expectedTargetGB: 100,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			mockInspector := mockdevices.NewMockInspector(mockCtrl)

			partitionPaths := []string{"/dev/nvme1n1p1"}
			mockInspector.EXPECT().DeviceSize(gomock.Any(), "/dev/nvme1n1").
				Return(test.volumeGB<<30, nil)
			mockInspector.EXPECT().PartitionPaths(gomock.Any(), "/dev/nvme1n1").
				Return(partitionPaths, nil)
			mockInspector.EXPECT().PartitionSizes(gomock.Any(), partitionPaths).
				Return(test.partitionsGB<<30, nil)

			reconciliation, err := NewReconciler(mockInspector).Reconcile(
				context.Background(), testRecord, test.increaseGB)

			require.NoError(t, err)
			assert.Equal(t, test.expectedModify, reconciliation.ModifyNeeded)
			assert.Equal(t, test.expectedTargetGB, reconciliation.TargetSizeGB)
			assert.Equal(t, test.expectedAdditionalGB, reconciliation.AdditionalNeededGB)
		})
	}
}

func TestReconcile_FractionalHeadroomRoundsUp(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockInspector := mockdevices.NewMockInspector(mockCtrl)

	// 100 GiB volume with 80.5 GiB partitioned leaves 19.5 GiB free; a 20 GiB step still
	// needs ceil(0.5) = 1 GiB from the cloud.
	partitionPaths := []string{"/dev/nvme1n1p1"}
	mockInspector.EXPECT().DeviceSize(gomock.Any(), "/dev/nvme1n1").Return(int64(100)<<30, nil)
	mockInspector.EXPECT().PartitionPaths(gomock.Any(), "/dev/nvme1n1").Return(partitionPaths, nil)
	mockInspector.EXPECT().PartitionSizes(gomock.Any(), partitionPaths).
		Return(int64(100)<<30-int64(19.5*float64(1<<30)), nil)

	reconciliation, err := NewReconciler(mockInspector).Reconcile(context.Background(), testRecord, 20)

	require.NoError(t, err)
	assert.True(t, reconciliation.ModifyNeeded)
	assert.Equal(t, int64(1), reconciliation.AdditionalNeededGB)
	assert.Equal(t, int64(101), reconciliation.TargetSizeGB)
}

func TestReconcile_DeviceSizeFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockInspector := mockdevices.NewMockInspector(mockCtrl)
	mockInspector.EXPECT().DeviceSize(gomock.Any(), "/dev/nvme1n1").
		Return(int64(0), errors.New("no such device"))

	_, err := NewReconciler(mockInspector).Reconcile(context.Background(), testRecord, 20)

	assert.Error(t, err)
}
