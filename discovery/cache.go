// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package discovery

import (
	"context"
	"encoding/json"

	"github.com/spf13/afero"

	. "github.com/scaleworks/ebs-autoscaler/logging"
	"github.com/scaleworks/ebs-autoscaler/utils/errors"
	"github.com/scaleworks/ebs-autoscaler/utils/models"
)

// Cache persists discovered VolumeRecords as a JSON file so restarts skip rediscovery.
type Cache struct {
	fs   afero.Fs
	path string
}

// NewCache returns a Cache over the given filesystem and path.
func NewCache(fs afero.Fs, path string) *Cache {
	return &Cache{fs: fs, path: path}
}

// Load returns the cached records, or nil when the cache is absent or empty.
func (c *Cache) Load(ctx context.Context) ([]models.VolumeRecord, error) {
	exists, err := afero.Exists(c.fs, c.path)
	if err != nil {
		return nil, errors.WrapWithTransientError(err, "could not check volume cache")
	}
	if !exists {
		Logc(ctx).WithField("path", c.path).Info("No volume cache found.")
		return nil, nil
	}

	data, err := afero.ReadFile(c.fs, c.path)
	if err != nil {
		return nil, errors.WrapWithTransientError(err, "could not read volume cache")
	}
	if len(data) == 0 {
		Logc(ctx).WithField("path", c.path).Info("Volume cache is empty.")
		return nil, nil
	}

	var records []models.VolumeRecord
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, errors.WrapWithTransientError(err, "could not parse volume cache")
	}

	Logc(ctx).WithFields(LogFields{"path": c.path, "count": len(records)}).Debug("Loaded volume cache.")
	return records, nil
}

// Save rewrites the cache with the given records.
func (c *Cache) Save(ctx context.Context, records []models.VolumeRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.WrapWithTransientError(err, "could not marshal volume records")
	}

	if err = afero.WriteFile(c.fs, c.path, data, 0o644); err != nil {
		return errors.WrapWithTransientError(err, "could not write volume cache")
	}

	Logc(ctx).WithFields(LogFields{"path": c.path, "count": len(records)}).Debug("Saved volume cache.")
	return nil
}

// Records returns the working set of VolumeRecords: the cache when it has content,
// otherwise a fresh discovery whose result is written back to the cache. An empty result
// either way is fatal, the daemon has nothing to watch.
func Records(ctx context.Context, cache *Cache, discoverer *Discoverer) ([]models.VolumeRecord, error) {
	records, err := cache.Load(ctx)
	if err != nil {
		Logc(ctx).WithError(err).Warning("Could not load volume cache, rediscovering.")
	}
	if len(records) > 0 {
		return records, nil
	}

	Logc(ctx).Info("Syncing system volume info...")
	if records, err = discoverer.Discover(ctx); err != nil {
		return nil, errors.WrapWithFatalStartupError(err, "volume discovery failed")
	}
	if len(records) == 0 {
		return nil, errors.FatalStartupError("no EBS volumes discovered on this instance")
	}

	if err = cache.Save(ctx, records); err != nil {
		Logc(ctx).WithError(err).Warning("Could not save volume cache.")
	}

	return records, nil
}
