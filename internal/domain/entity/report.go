package entity

import "time"

// ReportContentType identifies what kind of content a report targets.
type ReportContentType string

const (
	ReportContentVideo   ReportContentType = "video"
	ReportContentComment ReportContentType = "comment"
	ReportContentUser    ReportContentType = "user"
)

// ReportStatus is the moderation state of a report.
type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

// Report is a moderation ticket. Status is the only mutable field and no
// audit trail is kept for status changes.
type Report struct {
	ID          string            `json:"id"`
	ReporterID  string            `json:"reporter_id"`
	ContentID   string            `json:"content_id"`
	ContentType ReportContentType `json:"content_type"`
	Reason      string            `json:"reason"`
	Description string            `json:"description"`
	Status      ReportStatus      `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}
