// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

// Package awsapi provides a high-level interface to the AWS APIs the autoscaler uses:
// EC2 for EBS volume inspection and modification, SES for notification mail, and IMDS
// for instance identity.
package awsapi

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/middleware"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/ses"

	. "github.com/scaleworks/ebs-autoscaler/logging"
	"github.com/scaleworks/ebs-autoscaler/pkg/convert"
	"github.com/scaleworks/ebs-autoscaler/utils/errors"
)

// ClientConfig holds configuration data for the API client.
type ClientConfig struct {
	// Optional AWS SDK authentication parameters
	APIRegion string
	APIKey    string
	SecretKey string

	DebugTraceFlags map[string]bool
}

// Client wraps the AWS service clients behind the EBS, Mailer, and Metadata interfaces.
type Client struct {
	config     *ClientConfig
	ec2Client  EC2Client
	sesClient  SESClient
	imdsClient IMDSClient
}

func createAWSConfig(ctx context.Context, region, apiKey, secretKey string) (aws.Config, error) {
	var cfg aws.Config
	var err error

	if apiKey != "" {
		// Explicit credentials
		if region != "" {
			cfg, err = awsconfig.LoadDefaultConfig(ctx,
				awsconfig.WithCredentialsProvider(
					credentials.NewStaticCredentialsProvider(apiKey, secretKey, ""),
				),
				awsconfig.WithRegion(region),
			)
		} else {
			cfg, err = awsconfig.LoadDefaultConfig(ctx,
				awsconfig.WithCredentialsProvider(
					credentials.NewStaticCredentialsProvider(apiKey, secretKey, ""),
				),
			)
		}
	} else {
		// Implicit credentials
		if region != "" {
			cfg, err = awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
		} else {
			cfg, err = awsconfig.LoadDefaultConfig(ctx)
		}
	}

	return cfg, err
}

// NewClient is a factory method for creating a new instance.
func NewClient(ctx context.Context, config ClientConfig) (*Client, error) {
	cfg, err := createAWSConfig(ctx, config.APIRegion, config.APIKey, config.SecretKey)
	if err != nil {
		return nil, err
	}

	client := &Client{
		config:     &config,
		ec2Client:  ec2.NewFromConfig(cfg),
		sesClient:  ses.NewFromConfig(cfg),
		imdsClient: imds.NewFromConfig(cfg),
	}

	return client, nil
}

// GetVolume returns the current size and state of one EBS volume.
func (d *Client) GetVolume(ctx context.Context, volumeID string) (*Volume, error) {
	logFields := LogFields{
		"API":      "DescribeVolumes",
		"volumeID": volumeID,
	}

	input := &ec2.DescribeVolumesInput{
		VolumeIds: []string{volumeID},
	}

	output, err := d.ec2Client.DescribeVolumes(ctx, input)
	if err != nil {
		Logc(ctx).WithFields(logFields).WithError(err).Error("Could not describe volume.")
		return nil, errors.WrapWithTransientError(err, "error describing volume %s", volumeID)
	}
	if len(output.Volumes) == 0 {
		return nil, errors.NotFoundError("volume %s not found", volumeID)
	}

	logFields["requestID"], _ = middleware.GetRequestIDMetadata(output.ResultMetadata)
	Logc(ctx).WithFields(logFields).Debug("Described volume.")

	v := output.Volumes[0]
	return &Volume{
		VolumeID: convert.DerefString(v.VolumeId),
		SizeGiB:  int64(convert.DerefInt32(v.Size)),
		State:    string(v.State),
	}, nil
}

// ModifyVolume requests an asynchronous size increase for one EBS volume.
func (d *Client) ModifyVolume(ctx context.Context, volumeID string, sizeGiB int64) error {
	logFields := LogFields{
		"API":      "ModifyVolume",
		"volumeID": volumeID,
		"sizeGiB":  sizeGiB,
	}

	input := &ec2.ModifyVolumeInput{
		VolumeId: convert.ToPtr(volumeID),
		Size:     convert.ToPtr(int32(sizeGiB)),
	}

	output, err := d.ec2Client.ModifyVolume(ctx, input)
	if err != nil {
		Logc(ctx).WithFields(logFields).WithError(err).Error("Could not modify volume.")
		return errors.WrapWithTransientError(err, "error modifying volume %s", volumeID)
	}

	logFields["requestID"], _ = middleware.GetRequestIDMetadata(output.ResultMetadata)
	if output.VolumeModification != nil {
		logFields["modificationState"] = string(output.VolumeModification.ModificationState)
	}
	Logc(ctx).WithFields(logFields).Info("Volume modification requested.")

	return nil
}

// GetVolumeModification returns the progress of the most recent modification of one volume.
// A NotFoundError means no modification has ever been requested.
func (d *Client) GetVolumeModification(ctx context.Context, volumeID string) (*VolumeModification, error) {
	logFields := LogFields{
		"API":      "DescribeVolumesModifications",
		"volumeID": volumeID,
	}

	input := &ec2.DescribeVolumesModificationsInput{
		VolumeIds: []string{volumeID},
	}

	output, err := d.ec2Client.DescribeVolumesModifications(ctx, input)
	if err != nil {
		// The API reports "never modified" as an error rather than an empty list.
		if strings.Contains(err.Error(), "InvalidVolumeModification.NotFound") {
			return nil, errors.NotFoundError("no modification found for volume %s", volumeID)
		}
		Logc(ctx).WithFields(logFields).WithError(err).Error("Could not describe volume modifications.")
		return nil, errors.WrapWithTransientError(err, "error describing modifications of volume %s", volumeID)
	}
	if len(output.VolumesModifications) == 0 {
		return nil, errors.NotFoundError("no modification found for volume %s", volumeID)
	}

	logFields["requestID"], _ = middleware.GetRequestIDMetadata(output.ResultMetadata)
	Logc(ctx).WithFields(logFields).Debug("Described volume modifications.")

	m := output.VolumesModifications[0]
	return &VolumeModification{
		State:         string(m.ModificationState),
		StatusMessage: convert.DerefString(m.StatusMessage),
		TargetSizeGiB: int64(convert.DerefInt32(m.TargetSize)),
	}, nil
}

// ProbeCredentials issues a cheap read-only call to confirm the AWS credentials work.
func (d *Client) ProbeCredentials(ctx context.Context) error {
	input := &ec2.DescribeVolumesInput{
		MaxResults: convert.ToPtr(int32(5)),
		Filters: []ec2types.Filter{
			{Name: convert.ToPtr("status"), Values: []string{string(ec2types.VolumeStateInUse)}},
		},
	}

	if _, err := d.ec2Client.DescribeVolumes(ctx, input); err != nil {
		return errors.WrapWithFatalStartupError(err, "AWS credentials check failed")
	}
	return nil
}
