package contract

import (
	"context"

	"github.com/vibra-app/vibra/internal/domain/entity"
)

type IReportRepository interface {
	GetReportByID(ctx context.Context, id string) (*entity.Report, error)
	ListReports(ctx context.Context) ([]entity.Report, error)
	ListReportsByStatus(ctx context.Context, status entity.ReportStatus) ([]entity.Report, error)
	// UpdateReportStatus flips the status of a report in place.
	UpdateReportStatus(ctx context.Context, id string, status entity.ReportStatus) (*entity.Report, error)
}
