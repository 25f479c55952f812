// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

package awsapi

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"

	. "github.com/scaleworks/ebs-autoscaler/logging"
	"github.com/scaleworks/ebs-autoscaler/pkg/convert"
	"github.com/scaleworks/ebs-autoscaler/utils/errors"
)

const emailCharset = "UTF-8"

// SendEmail delivers an HTML email through SES.
func (d *Client) SendEmail(
	ctx context.Context, sender string, recipients []string, subject, htmlBody string,
) error {
	logFields := LogFields{
		"API":        "SendEmail",
		"sender":     sender,
		"recipients": recipients,
		"subject":    subject,
	}

	input := &ses.SendEmailInput{
		Source: convert.ToPtr(sender),
		Destination: &sestypes.Destination{
			ToAddresses: recipients,
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{
				Charset: convert.ToPtr(emailCharset),
				Data:    convert.ToPtr(subject),
			},
			Body: &sestypes.Body{
				Html: &sestypes.Content{
					Charset: convert.ToPtr(emailCharset),
					Data:    convert.ToPtr(htmlBody),
				},
			},
		},
	}

	output, err := d.sesClient.SendEmail(ctx, input)
	if err != nil {
		Logc(ctx).WithFields(logFields).WithError(err).Error("Could not send email.")
		return errors.WrapWithTransientError(err, "error sending email")
	}

	logFields["requestID"], _ = middleware.GetRequestIDMetadata(output.ResultMetadata)
	logFields["messageID"] = convert.DerefString(output.MessageId)
	Logc(ctx).WithFields(logFields).Info("Email sent.")

	return nil
}
