// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

// Package config loads and validates the autoscaler's INI configuration file.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/scaleworks/ebs-autoscaler/utils/errors"
)

const (
	// DefaultConfigPath is the configuration file consulted when no override is given.
	DefaultConfigPath = "/opt/ebs-autoscaler/config.ini"

	// DefaultCachePath is the volume identity cache location.
	DefaultCachePath = "/opt/ebs-autoscaler/volume_info.json"

	// DefaultRegion is used when [general] region is not set.
	DefaultRegion = "eu-west-1"

	// IncreaseTypeSize is the only supported growth strategy: add a fixed number of GiB.
	IncreaseTypeSize = "size"
)

// Config is the validated runtime configuration.
type Config struct {
	Interval        time.Duration
	Threshold       float64
	IncreaseType    string
	IncreaseGB      int64
	Region          string
	ExcludedVolumes map[string]struct{}

	NotificationEnabled bool
	EmailSender         string
	EmailRecipients     []string

	MetricsAddress string

	CachePath string
}

// Load reads and validates the INI configuration at path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.WrapWithFatalStartupError(err, "could not read configuration file")
	}

	for _, key := range []string{"interval", "threshold", "increase_type", "increase_gb"} {
		if v.GetString("general."+key) == "" {
			return nil, errors.FatalStartupError("missing or empty value for general.%s", key)
		}
	}

	c := &Config{
		Interval:        time.Duration(v.GetInt("general.interval")) * time.Second,
		Threshold:       v.GetFloat64("general.threshold"),
		IncreaseType:    strings.ToLower(strings.TrimSpace(v.GetString("general.increase_type"))),
		IncreaseGB:      v.GetInt64("general.increase_gb"),
		Region:          v.GetString("general.region"),
		ExcludedVolumes: make(map[string]struct{}),
		MetricsAddress:  v.GetString("general.metrics_address"),
		CachePath:       DefaultCachePath,
	}
	if c.Region == "" {
		c.Region = DefaultRegion
	}

	if c.IncreaseType != IncreaseTypeSize {
		return nil, errors.FatalStartupError(
			"only 'size' increase type is supported: %s", c.IncreaseType)
	}
	if c.Interval <= 0 {
		return nil, errors.FatalStartupError("general.interval must be positive")
	}
	if c.Threshold <= 0 || c.Threshold > 100 {
		return nil, errors.FatalStartupError("general.threshold must be in (0, 100]")
	}
	if c.IncreaseGB <= 0 {
		return nil, errors.FatalStartupError("general.increase_gb must be positive")
	}

	c.NotificationEnabled = v.GetBool("notification.enabled")
	if c.NotificationEnabled {
		c.EmailSender = v.GetString("notification.email-sender")
		c.EmailRecipients = splitList(v.GetString("notification.email-recipients"))
		if c.EmailSender == "" || len(c.EmailRecipients) == 0 {
			return nil, errors.FatalStartupError(
				"notification enabled but email-sender or email-recipients missing")
		}
	}

	for _, id := range splitList(v.GetString("exclude.volumes")) {
		c.ExcludedVolumes[id] = struct{}{}
	}

	return c, nil
}

// IsExcluded reports whether a volume id is configured to never be scaled.
func (c *Config) IsExcluded(volumeID string) bool {
	_, ok := c.ExcludedVolumes[volumeID]
	return ok
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
