// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package discovery

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockexec "github.com/scaleworks/ebs-autoscaler/mocks/mock_utils/mock_exec"
	mockfsutils "github.com/scaleworks/ebs-autoscaler/mocks/mock_utils/mock_fsutils"
	"github.com/scaleworks/ebs-autoscaler/utils/errors"
	"github.com/scaleworks/ebs-autoscaler/utils/fsutils"
	"github.com/scaleworks/ebs-autoscaler/utils/models"
)

const lsblkJSON = `{
  "blockdevices": [
    {"name": "nvme0n1", "path": "/dev/nvme0n1", "mountpoint": null, "children": [
      {"name": "nvme0n1p1", "path": "/dev/nvme0n1p1", "mountpoint": "/"},
      {"name": "nvme0n1p128", "path": "/dev/nvme0n1p128", "mountpoint": null}
    ]},
    {"name": "nvme1n1", "path": "/dev/nvme1n1", "mountpoint": "/data", "children": []}
  ]
}`

func TestDiscover(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockCommand := mockexec.NewMockCommand(mockCtrl)
	mockStats := mockfsutils.NewMockStats(mockCtrl)

	mockCommand.EXPECT().ExecuteWithTimeout(
		gomock.Any(), "lsblk", 15*time.Second, true, "-b", "-o", "NAME,PATH,MOUNTPOINT", "-J",
	).Return([]byte(lsblkJSON), nil)
	mockStats.EXPECT().Usage(gomock.Any(), "/").Return(&fsutils.Usage{TotalBytes: 8 << 30}, nil)
	mockCommand.EXPECT().ExecuteWithTimeout(
		gomock.Any(), "ebsnvme-id", 10*time.Second, true, "-v", "/dev/nvme0n1p1",
	).Return([]byte("Volume ID: vol-0root\n"), nil)
	mockCommand.EXPECT().ExecuteWithTimeout(
		gomock.Any(), "ebsnvme-id", 10*time.Second, true, "/dev/nvme1n1",
	).Return([]byte("vol-0data\n"), nil)

	records, err := NewDiscoverer(mockCommand, mockStats).Discover(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, models.VolumeRecord{
		VolumeID:      "vol-0root",
		DeviceName:    "nvme0n1",
		Mountpoint:    "/",
		PartitionPath: "/dev/nvme0n1p1",
	}, records[0])
	assert.Equal(t, models.VolumeRecord{
		VolumeID:      "vol-0data",
		DeviceName:    "nvme1n1",
		Mountpoint:    "/data",
		PartitionPath: "/dev/nvme1n1",
	}, records[1])
}

func TestDiscover_LargestMountedPartitionWins(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockCommand := mockexec.NewMockCommand(mockCtrl)
	mockStats := mockfsutils.NewMockStats(mockCtrl)

	lsblk := `{"blockdevices": [
	  {"name": "nvme0n1", "path": "/dev/nvme0n1", "mountpoint": null, "children": [
	    {"name": "nvme0n1p1", "path": "/dev/nvme0n1p1", "mountpoint": "/boot"},
	    {"name": "nvme0n1p2", "path": "/dev/nvme0n1p2", "mountpoint": "/"}
	  ]}
	]}`

	mockCommand.EXPECT().ExecuteWithTimeout(
		gomock.Any(), "lsblk", 15*time.Second, true, "-b", "-o", "NAME,PATH,MOUNTPOINT", "-J",
	).Return([]byte(lsblk), nil)
	mockStats.EXPECT().Usage(gomock.Any(), "/boot").Return(&fsutils.Usage{TotalBytes: 1 << 30}, nil)
	mockStats.EXPECT().Usage(gomock.Any(), "/").Return(&fsutils.Usage{TotalBytes: 100 << 30}, nil)
	mockCommand.EXPECT().ExecuteWithTimeout(
		gomock.Any(), "ebsnvme-id", 10*time.Second, true, "-v", "/dev/nvme0n1p2",
	).Return([]byte("Volume ID: vol-0root\n"), nil)

	records, err := NewDiscoverer(mockCommand, mockStats).Discover(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "/dev/nvme0n1p2", records[0].PartitionPath)
}

func TestDiscover_NonEBSDeviceSkipped(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockCommand := mockexec.NewMockCommand(mockCtrl)
	mockStats := mockfsutils.NewMockStats(mockCtrl)

	lsblk := `{"blockdevices": [
	  {"name": "loop0", "path": "/dev/loop0", "mountpoint": "/snap"}
	]}`

	mockCommand.EXPECT().ExecuteWithTimeout(
		gomock.Any(), "lsblk", 15*time.Second, true, "-b", "-o", "NAME,PATH,MOUNTPOINT", "-J",
	).Return([]byte(lsblk), nil)
	mockCommand.EXPECT().ExecuteWithTimeout(
		gomock.Any(), "ebsnvme-id", 10*time.Second, true, "/dev/loop0",
	).Return(nil, errors.New("not an EBS device"))

	records, err := NewDiscoverer(mockCommand, mockStats).Discover(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDiscover_LsblkFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockCommand := mockexec.NewMockCommand(mockCtrl)
	mockStats := mockfsutils.NewMockStats(mockCtrl)

	mockCommand.EXPECT().ExecuteWithTimeout(
		gomock.Any(), "lsblk", 15*time.Second, true, "-b", "-o", "NAME,PATH,MOUNTPOINT", "-J",
	).Return(nil, errors.New("command not found"))

	_, err := NewDiscoverer(mockCommand, mockStats).Discover(context.Background())

	assert.Error(t, err)
}

func TestCacheRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	cache := NewCache(fs, "/opt/ebs-autoscaler/volume_info.json")
	ctx := context.Background()

	records, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, records)

	in := []models.VolumeRecord{
		{VolumeID: "vol-0aaa", DeviceName: "nvme1n1", Mountpoint: "/data", PartitionPath: "/dev/nvme1n1p1"},
	}
	require.NoError(t, cache.Save(ctx, in))

	records, err = cache.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, records)
}

func TestRecords_CacheHitSkipsDiscovery(t *testing.T) {
	fs := afero.NewMemMapFs()
	cache := NewCache(fs, "/opt/ebs-autoscaler/volume_info.json")
	ctx := context.Background()

	in := []models.VolumeRecord{
		{VolumeID: "vol-0aaa", DeviceName: "nvme1n1", Mountpoint: "/data", PartitionPath: "/dev/nvme1n1"},
	}
	require.NoError(t, cache.Save(ctx, in))

	// A nil discoverer proves the cache path never shells out.
	records, err := Records(ctx, cache, nil)

	require.NoError(t, err)
	assert.Equal(t, in, records)
}

func TestRecords_EmptyDiscoveryIsFatal(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockCommand := mockexec.NewMockCommand(mockCtrl)
	mockStats := mockfsutils.NewMockStats(mockCtrl)

	mockCommand.EXPECT().ExecuteWithTimeout(
		gomock.Any(), "lsblk", 15*time.Second, true, "-b", "-o", "NAME,PATH,MOUNTPOINT", "-J",
	).Return([]byte(`{"blockdevices": []}`), nil)

	fs := afero.NewMemMapFs()
	cache := NewCache(fs, "/opt/ebs-autoscaler/volume_info.json")

	_, err := Records(context.Background(), cache, NewDiscoverer(mockCommand, mockStats))

	assert.Error(t, err)
	assert.True(t, errors.IsFatalStartupError(err))
}

func TestParseVolumeID(t *testing.T) {
	id, err := parseVolumeID("Volume ID: vol-0123456789abcdef0\n")
	require.NoError(t, err)
	assert.Equal(t, "vol-0123456789abcdef0", id)

	_, err = parseVolumeID("unexpected output")
	assert.Error(t, err)
}
