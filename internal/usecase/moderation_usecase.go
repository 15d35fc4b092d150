package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/vibra-app/vibra/internal/domain/contract"
	"github.com/vibra-app/vibra/internal/domain/entity"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

// ErrReportNotPending rejects moderator actions on already-handled reports.
var ErrReportNotPending = errors.New("report is not pending")

// ModerationUsecase serves the moderation dashboard. Report status is the
// only thing it mutates, and no audit trail is kept.
type ModerationUsecase struct {
	reportRepo  contract.IReportRepository
	userRepo    contract.IUserRepository
	videoRepo   contract.IVideoRepository
	commentRepo contract.ICommentRepository
	logger      usecasecontract.IAppLogger
}

// NewModerationUsecase creates a new ModerationUsecase instance.
func NewModerationUsecase(
	reportRepo contract.IReportRepository,
	userRepo contract.IUserRepository,
	videoRepo contract.IVideoRepository,
	commentRepo contract.ICommentRepository,
	logger usecasecontract.IAppLogger,
) *ModerationUsecase {
	return &ModerationUsecase{
		reportRepo:  reportRepo,
		userRepo:    userRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

var _ usecasecontract.IModerationUseCase = (*ModerationUsecase)(nil)

// ListReports returns reports joined with reporter and content previews.
// An empty status returns everything.
func (uc *ModerationUsecase) ListReports(ctx context.Context, status entity.ReportStatus) ([]usecasecontract.ReportDetail, error) {
	var (
		reports []entity.Report
		err     error
	)
	if status == "" {
		reports, err = uc.reportRepo.ListReports(ctx)
	} else {
		reports, err = uc.reportRepo.ListReportsByStatus(ctx, status)
	}
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	out := make([]usecasecontract.ReportDetail, 0, len(reports))
	for _, r := range reports {
		out = append(out, uc.detail(ctx, r))
	}
	return out, nil
}

// detail joins a report with the records it references. Missing
// references leave the preview empty rather than failing the listing.
func (uc *ModerationUsecase) detail(ctx context.Context, r entity.Report) usecasecontract.ReportDetail {
	d := usecasecontract.ReportDetail{Report: r}
	if reporter, err := uc.userRepo.GetUserByID(ctx, r.ReporterID); err == nil {
		d.Reporter = reporter
	}
	switch r.ContentType {
	case entity.ReportContentVideo:
		if v, err := uc.videoRepo.GetVideoByID(ctx, r.ContentID); err == nil {
			d.Video = v
		}
	case entity.ReportContentComment:
		if c, err := uc.commentRepo.GetCommentByID(ctx, r.ContentID); err == nil {
			d.Comment = c
		}
	case entity.ReportContentUser:
		if u, err := uc.userRepo.GetUserByID(ctx, r.ContentID); err == nil {
			d.ReportedUser = u
		}
	}
	return d
}

// Stats summarizes the report queue by status.
func (uc *ModerationUsecase) Stats(ctx context.Context) (*usecasecontract.ModerationStats, error) {
	reports, err := uc.reportRepo.ListReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("moderation stats: %w", err)
	}
	stats := &usecasecontract.ModerationStats{}
	for _, r := range reports {
		switch r.Status {
		case entity.ReportStatusPending:
			stats.Pending++
		case entity.ReportStatusResolved:
			stats.Resolved++
		case entity.ReportStatusDismissed:
			stats.Dismissed++
		}
	}
	return stats, nil
}

// Resolve marks a pending report resolved.
func (uc *ModerationUsecase) Resolve(ctx context.Context, reportID string) (*entity.Report, error) {
	return uc.close(ctx, reportID, entity.ReportStatusResolved)
}

// Dismiss marks a pending report dismissed.
func (uc *ModerationUsecase) Dismiss(ctx context.Context, reportID string) (*entity.Report, error) {
	return uc.close(ctx, reportID, entity.ReportStatusDismissed)
}

func (uc *ModerationUsecase) close(ctx context.Context, reportID string, status entity.ReportStatus) (*entity.Report, error) {
	report, err := uc.reportRepo.GetReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.Status != entity.ReportStatusPending {
		return nil, ErrReportNotPending
	}
	updated, err := uc.reportRepo.UpdateReportStatus(ctx, reportID, status)
	if err != nil {
		uc.logger.Errorf("report %s status update failed: %v", reportID, err)
		return nil, fmt.Errorf("update report: %w", err)
	}
	return updated, nil
}
