// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package awsapi

//go:generate mockgen -destination=../mocks/mock_awsapi/mock_awsapi.go github.com/scaleworks/ebs-autoscaler/awsapi EBS,Mailer,Metadata

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

// Volume is the subset of EBS volume state the autoscaler acts on.
type Volume struct {
	VolumeID string
	SizeGiB  int64
	State    string
}

// VolumeModification is the progress of an asynchronous EBS volume modification.
type VolumeModification struct {
	State         string
	StatusMessage string
	TargetSizeGiB int64
}

// Volume modification states as reported by the EC2 API.
const (
	ModificationStateModifying  = "modifying"
	ModificationStateOptimizing = "optimizing"
	ModificationStateCompleted  = "completed"
	ModificationStateFailed     = "failed"

	VolumeStateInUse = "in-use"
)

// EBS is the narrow EBS surface consumed by the resize orchestrator.
type EBS interface {
	GetVolume(ctx context.Context, volumeID string) (*Volume, error)
	ModifyVolume(ctx context.Context, volumeID string, sizeGiB int64) error
	GetVolumeModification(ctx context.Context, volumeID string) (*VolumeModification, error)
}

// Mailer sends notification email.
type Mailer interface {
	SendEmail(ctx context.Context, sender string, recipients []string, subject, htmlBody string) error
}

// Metadata reads EC2 instance metadata.
type Metadata interface {
	InstanceID(ctx context.Context) (string, error)
}

// EC2Client matches the aws-sdk-go-v2 EC2 operations we invoke, for substitution in tests.
type EC2Client interface {
	DescribeVolumes(
		ctx context.Context, params *ec2.DescribeVolumesInput, optFns ...func(*ec2.Options),
	) (*ec2.DescribeVolumesOutput, error)
	ModifyVolume(
		ctx context.Context, params *ec2.ModifyVolumeInput, optFns ...func(*ec2.Options),
	) (*ec2.ModifyVolumeOutput, error)
	DescribeVolumesModifications(
		ctx context.Context, params *ec2.DescribeVolumesModificationsInput, optFns ...func(*ec2.Options),
	) (*ec2.DescribeVolumesModificationsOutput, error)
}

// SESClient matches the aws-sdk-go-v2 SES operation we invoke.
type SESClient interface {
	SendEmail(
		ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options),
	) (*ses.SendEmailOutput, error)
}

// IMDSClient matches the aws-sdk-go-v2 IMDS operation we invoke.
type IMDSClient interface {
	GetMetadata(
		ctx context.Context, params *imds.GetMetadataInput, optFns ...func(*imds.Options),
	) (*imds.GetMetadataOutput, error)
}
