package usecasecontract

import (
	"time"

	"github.com/shopspring/decimal"
)

// IConfigProvider exposes the configuration values the usecases need.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetAccessTokenExpiry() time.Duration
	GetScrollSettleWindow() time.Duration
	GetWithdrawalDelay() time.Duration
	GetUploadDelay() time.Duration
	GetMinWithdrawal() decimal.Decimal
	GetWithdrawalFee() decimal.Decimal
	GetUSDRate() decimal.Decimal
	GetMaxUploadBytes() int64
	GetDefaultAvatarURL() string
}
