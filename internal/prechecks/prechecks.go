// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

// Package prechecks validates the host environment before the autoscaler starts.
package prechecks

import (
	"context"
	"os"
	osexec "os/exec"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/multierr"

	. "github.com/scaleworks/ebs-autoscaler/logging"
	"github.com/scaleworks/ebs-autoscaler/utils/errors"
)

// RequiredTools are the host binaries the autoscaler shells out to.
var RequiredTools = []string{
	"lsblk",
	"ebsnvme-id",
	"blockdev",
	"growpart",
	"blkid",
	"xfs_growfs",
	"resize2fs",
}

// CredentialProber confirms the configured AWS credentials can reach the EC2 API.
type CredentialProber interface {
	ProbeCredentials(ctx context.Context) error
}

// Checker aggregates all startup prerequisite checks.
type Checker struct {
	fs       afero.Fs
	prober   CredentialProber
	lookPath func(string) (string, error)
	geteuid  func() int
}

// New returns a Checker over the real host environment.
func New(fs afero.Fs, prober CredentialProber) *Checker {
	return &Checker{
		fs:       fs,
		prober:   prober,
		lookPath: osexec.LookPath,
		geteuid:  os.Geteuid,
	}
}

// Run performs every check and reports all failures at once as a FatalStartupError.
func (c *Checker) Run(ctx context.Context, configPath, cachePath string) error {
	var combined error

	if c.geteuid() != 0 {
		combined = multierr.Append(combined,
			errors.New("must run as root to grow partitions and filesystems"))
	}

	for _, tool := range RequiredTools {
		if _, err := c.lookPath(tool); err != nil {
			combined = multierr.Append(combined,
				errors.New("required tool not found on PATH: "+tool))
		}
	}

	if _, err := c.fs.Stat(configPath); err != nil {
		combined = multierr.Append(combined,
			errors.New("configuration file not readable: "+configPath))
	}

	if err := c.checkCacheDirWritable(cachePath); err != nil {
		combined = multierr.Append(combined, err)
	}

	if err := c.prober.ProbeCredentials(ctx); err != nil {
		combined = multierr.Append(combined, err)
	}

	if combined != nil {
		return errors.WrapWithFatalStartupError(combined, "startup prerequisite checks failed")
	}

	Logc(ctx).Debug("All startup prerequisite checks passed.")
	return nil
}

func (c *Checker) checkCacheDirWritable(cachePath string) error {
	dir := filepath.Dir(cachePath)
	probe := filepath.Join(dir, ".write-probe")

	if err := afero.WriteFile(c.fs, probe, []byte{}, 0o600); err != nil {
		return errors.New("cache directory not writable: " + dir)
	}
	_ = c.fs.Remove(probe)
	return nil
}
