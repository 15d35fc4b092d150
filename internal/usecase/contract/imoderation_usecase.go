package usecasecontract

import (
	"context"

	"github.com/vibra-app/vibra/internal/domain/entity"
)

// ReportDetail is a report joined with its reporter and the reported
// content for preview.
type ReportDetail struct {
	Report       entity.Report   `json:"report"`
	Reporter     *entity.User    `json:"reporter,omitempty"`
	Video        *entity.Video   `json:"video,omitempty"`
	Comment      *entity.Comment `json:"comment,omitempty"`
	ReportedUser *entity.User    `json:"reported_user,omitempty"`
}

// ModerationStats summarizes the report queue.
type ModerationStats struct {
	Pending   int `json:"pending"`
	Resolved  int `json:"resolved"`
	Dismissed int `json:"dismissed"`
}

// IModerationUseCase serves the moderation dashboard.
type IModerationUseCase interface {
	// ListReports returns reports joined with content previews. An empty
	// status returns all reports.
	ListReports(ctx context.Context, status entity.ReportStatus) ([]ReportDetail, error)
	Stats(ctx context.Context) (*ModerationStats, error)
	Resolve(ctx context.Context, reportID string) (*entity.Report, error)
	Dismiss(ctx context.Context, reportID string) (*entity.Report, error)
}
