// Copyright 2025 Scaleworks, Inc. All Rights Reserved.

// Package notifier emails end-of-sweep scale reports through SES.
package notifier

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/dustin/go-humanize"

	"github.com/scaleworks/ebs-autoscaler/awsapi"
	. "github.com/scaleworks/ebs-autoscaler/logging"
	"github.com/scaleworks/ebs-autoscaler/pkg/capacity"
	"github.com/scaleworks/ebs-autoscaler/utils/models"
)

const unknownInstanceID = "unknown"

var reportTemplate = template.Must(template.New("scaleReport").Parse(`
<html>
<body>
<p>Hello,</p>
<p>EBS volume auto-scaling has been triggered on instance <b>{{.InstanceID}}</b> with the following details:</p>
<table style="border-collapse: collapse; width: 100%;">
<thead>
<tr style="background-color: #f2f2f2;">
<th style="border: 1px solid #ddd; padding: 8px; text-align: left;">Volume ID</th>
<th style="border: 1px solid #ddd; padding: 8px; text-align: left;">Mount Point</th>
<th style="border: 1px solid #ddd; padding: 8px; text-align: right;">Previous Size</th>
<th style="border: 1px solid #ddd; padding: 8px; text-align: right;">Expanded By</th>
<th style="border: 1px solid #ddd; padding: 8px; text-align: right;">New Partition Size</th>
<th style="border: 1px solid #ddd; padding: 8px; text-align: right;">New Volume Size</th>
</tr>
</thead>
<tbody>
{{- range .Rows}}
<tr>
<td style="border: 1px solid #ddd; padding: 8px;">{{.VolumeID}}</td>
<td style="border: 1px solid #ddd; padding: 8px;">{{.Mountpoint}}</td>
<td style="border: 1px solid #ddd; padding: 8px; text-align: right;">{{.PreviousSize}}</td>
<td style="border: 1px solid #ddd; padding: 8px; text-align: right;">{{.ExpandedBy}}</td>
<td style="border: 1px solid #ddd; padding: 8px; text-align: right;">{{.NewPartitionSize}}</td>
<td style="border: 1px solid #ddd; padding: 8px; text-align: right;">{{.NewVolumeSize}}</td>
</tr>
{{- end}}
</tbody>
</table>
<br>
<p>Regards,</p>
<p>EBS Volume Autoscaler</p>
</body>
</html>`))

type reportRow struct {
	VolumeID         string
	Mountpoint       string
	PreviousSize     string
	ExpandedBy       string
	NewPartitionSize string
	NewVolumeSize    string
}

type reportData struct {
	InstanceID string
	Rows       []reportRow
}

// Notifier renders scale reports and delivers them by email.
type Notifier struct {
	mailer     awsapi.Mailer
	metadata   awsapi.Metadata
	enabled    bool
	sender     string
	recipients []string
}

// New returns a Notifier. With enabled false, NotifyScaleReport is a no-op.
func New(mailer awsapi.Mailer, metadata awsapi.Metadata, enabled bool, sender string, recipients []string) *Notifier {
	return &Notifier{
		mailer:     mailer,
		metadata:   metadata,
		enabled:    enabled,
		sender:     sender,
		recipients: recipients,
	}
}

// NotifyScaleReport sends one email describing the sweep's scaled volumes. Delivery is
// best effort; failures are logged and never affect the control loop.
func (n *Notifier) NotifyScaleReport(ctx context.Context, rows []models.ScaleReportRow) {
	if !n.enabled || len(rows) == 0 {
		return
	}

	instanceID, err := n.metadata.InstanceID(ctx)
	if err != nil || instanceID == "" {
		Logc(ctx).WithError(err).Warning("Could not determine instance id for notification.")
		instanceID = unknownInstanceID
	}

	data := reportData{InstanceID: instanceID}
	for _, row := range rows {
		data.Rows = append(data.Rows, reportRow{
			VolumeID:         row.VolumeID,
			Mountpoint:       row.Mountpoint,
			PreviousSize:     humanize.IBytes(uint64(capacity.GiBToBytes(row.PreviousSizeGB))),
			ExpandedBy:       humanize.IBytes(uint64(capacity.GiBToBytes(row.ExpandedByGB))),
			NewPartitionSize: humanize.IBytes(uint64(capacity.GiBToBytes(row.NewPartitionSizeGB))),
			NewVolumeSize:    humanize.IBytes(uint64(capacity.GiBToBytes(row.NewVolumeSizeGB))),
		})
	}

	var body bytes.Buffer
	if err = reportTemplate.Execute(&body, data); err != nil {
		Logc(ctx).WithError(err).Error("Could not render scale report.")
		return
	}

	subject := fmt.Sprintf("EBS Volume Scaling Alert: volumes resized on instance %s", instanceID)
	if err = n.mailer.SendEmail(ctx, n.sender, n.recipients, subject, body.String()); err != nil {
		Logc(ctx).WithError(err).Error("Could not send scale report.")
		return
	}

	Logc(ctx).WithField("volumes", len(rows)).Info("Scale report sent.")
}
