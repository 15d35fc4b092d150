package usecasecontract

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vibra-app/vibra/internal/domain/entity"
)

// ActivityEntry is one recent ledger entry joined with its username.
type ActivityEntry struct {
	Transaction entity.Transaction `json:"transaction"`
	Username    string             `json:"username"`
}

// AdminOverview is the admin dashboard's key-metrics block.
type AdminOverview struct {
	TotalUsers       int64           `json:"total_users"`
	TotalVideos      int64           `json:"total_videos"`
	TotalViews       int64           `json:"total_views"`
	RewardsPaid      decimal.Decimal `json:"rewards_paid"`
	WithdrawalsTotal decimal.Decimal `json:"withdrawals_total"`
	PlatformBalance  decimal.Decimal `json:"platform_balance"`
	RecentActivity   []ActivityEntry `json:"recent_activity"`
}

// RewardRates is the VIBRA payout per engagement type.
type RewardRates struct {
	Like    decimal.Decimal `json:"like"`
	Comment decimal.Decimal `json:"comment"`
	Share   decimal.Decimal `json:"share"`
	Upload  decimal.Decimal `json:"upload"`
}

// IAdminUseCase serves the admin dashboard.
type IAdminUseCase interface {
	Overview(ctx context.Context) (*AdminOverview, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
	RewardRates(ctx context.Context) (RewardRates, error)
	UpdateRewardRates(ctx context.Context, rates RewardRates) (RewardRates, error)
}
