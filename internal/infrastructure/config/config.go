package config

import (
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL         string
	AccessTokenExpiry  time.Duration
	ScrollSettleWindow time.Duration
	WithdrawalDelay    time.Duration
	UploadDelay        time.Duration
	MinWithdrawal      decimal.Decimal
	WithdrawalFee      decimal.Decimal
	USDRate            decimal.Decimal
	MaxUploadBytes     int64
	DefaultAvatarURL   string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		AppBaseURL:         getEnv("APP_BASE_URL", "http://localhost:8080"),
		AccessTokenExpiry:  time.Hour * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_HOURS", 24)),
		ScrollSettleWindow: time.Millisecond * time.Duration(getEnvAsInt("SCROLL_SETTLE_WINDOW_MS", 150)),
		WithdrawalDelay:    time.Millisecond * time.Duration(getEnvAsInt("WITHDRAWAL_DELAY_MS", 2000)),
		UploadDelay:        time.Millisecond * time.Duration(getEnvAsInt("UPLOAD_DELAY_MS", 1500)),
		MinWithdrawal:      getEnvAsDecimal("MIN_WITHDRAWAL_VIBRA", "10"),
		WithdrawalFee:      getEnvAsDecimal("WITHDRAWAL_FEE_VIBRA", "2"),
		USDRate:            getEnvAsDecimal("VIBRA_USD_RATE", "0.85"),
		MaxUploadBytes:     int64(getEnvAsInt("MAX_UPLOAD_MB", 100)) << 20,
		DefaultAvatarURL:   getEnv("DEFAULT_AVATAR_URL", "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=400"),
	}
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetAccessTokenExpiry returns the expiry duration for access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetScrollSettleWindow returns the feed scroll-settling debounce window.
func (c *Config) GetScrollSettleWindow() time.Duration {
	return c.ScrollSettleWindow
}

// GetWithdrawalDelay returns the simulated withdrawal processing time.
func (c *Config) GetWithdrawalDelay() time.Duration {
	return c.WithdrawalDelay
}

// GetUploadDelay returns the simulated upload processing time.
func (c *Config) GetUploadDelay() time.Duration {
	return c.UploadDelay
}

// GetMinWithdrawal returns the minimum withdrawable amount in VIBRA.
func (c *Config) GetMinWithdrawal() decimal.Decimal {
	return c.MinWithdrawal
}

// GetWithdrawalFee returns the flat withdrawal fee in VIBRA.
func (c *Config) GetWithdrawalFee() decimal.Decimal {
	return c.WithdrawalFee
}

// GetUSDRate returns the display-only VIBRA to USD rate.
func (c *Config) GetUSDRate() decimal.Decimal {
	return c.USDRate
}

// GetMaxUploadBytes returns the maximum accepted upload size.
func (c *Config) GetMaxUploadBytes() int64 {
	return c.MaxUploadBytes
}

// GetDefaultAvatarURL returns the avatar assigned to new accounts.
func (c *Config) GetDefaultAvatarURL() string {
	return c.DefaultAvatarURL
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a decimal or return a default value.
func getEnvAsDecimal(name string, fallback string) decimal.Decimal {
	if value, err := decimal.NewFromString(getEnv(name, "")); err == nil {
		return value
	}
	return decimal.RequireFromString(fallback)
}
