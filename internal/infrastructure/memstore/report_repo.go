package memstore

import (
	"context"

	"github.com/vibra-app/vibra/internal/domain/contract"
	"github.com/vibra-app/vibra/internal/domain/entity"
)

// ReportRepository is the in-memory implementation of contract.IReportRepository.
type ReportRepository struct {
	store *Store
}

// NewReportRepository creates a report repository over the shared store.
func NewReportRepository(store *Store) contract.IReportRepository {
	return &ReportRepository{store: store}
}

var _ contract.IReportRepository = (*ReportRepository)(nil)

// GetReportByID retrieves a report by ID.
func (r *ReportRepository) GetReportByID(ctx context.Context, id string) (*entity.Report, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i, ok := r.store.reportsByID[id]
	if !ok {
		return nil, contract.ErrReportNotFound
	}
	rep := r.store.reports[i]
	return &rep, nil
}

// ListReports returns every report in seeded order.
func (r *ReportRepository) ListReports(ctx context.Context) ([]entity.Report, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]entity.Report, len(r.store.reports))
	copy(out, r.store.reports)
	return out, nil
}

// ListReportsByStatus filters reports by status.
func (r *ReportRepository) ListReportsByStatus(ctx context.Context, status entity.ReportStatus) ([]entity.Report, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.Report
	for i := range r.store.reports {
		if r.store.reports[i].Status == status {
			out = append(out, r.store.reports[i])
		}
	}
	return out, nil
}

// UpdateReportStatus flips a report's status. No audit trail is kept.
func (r *ReportRepository) UpdateReportStatus(ctx context.Context, id string, status entity.ReportStatus) (*entity.Report, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i, ok := r.store.reportsByID[id]
	if !ok {
		return nil, contract.ErrReportNotFound
	}
	r.store.reports[i].Status = status
	rep := r.store.reports[i]
	return &rep, nil
}
