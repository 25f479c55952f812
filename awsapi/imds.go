// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package awsapi

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"

	. "github.com/scaleworks/ebs-autoscaler/logging"
	"github.com/scaleworks/ebs-autoscaler/utils/errors"
)

// InstanceID returns this instance's id from the instance metadata service. The SDK handles
// the IMDSv2 token exchange.
func (d *Client) InstanceID(ctx context.Context) (string, error) {
	Logc(ctx).Debug(">>>> awsapi.InstanceID")
	defer Logc(ctx).Debug("<<<< awsapi.InstanceID")

	output, err := d.imdsClient.GetMetadata(ctx, &imds.GetMetadataInput{Path: "instance-id"})
	if err != nil {
		return "", errors.WrapWithTransientError(err, "error reading instance metadata")
	}
	defer func() { _ = output.Content.Close() }()

	id, err := io.ReadAll(output.Content)
	if err != nil {
		return "", errors.WrapWithTransientError(err, "error reading instance metadata body")
	}

	return string(id), nil
}
