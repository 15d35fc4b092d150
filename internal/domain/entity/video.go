package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Video is a single content unit in the feed.
type Video struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Username     string          `json:"username"`
	Avatar       string          `json:"avatar"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	VideoURL     string          `json:"video_url"`
	ThumbnailURL string          `json:"thumbnail_url"`
	Duration     int             `json:"duration"`
	Likes        int64           `json:"likes"`
	Comments     int64           `json:"comments"`
	Shares       int64           `json:"shares"`
	Views        int64           `json:"views"`
	Tags         []string        `json:"tags"`
	CreatedAt    time.Time       `json:"created_at"`
	IsLiked      bool            `json:"is_liked"`
	Rewards      decimal.Decimal `json:"rewards"`
}

// Clone returns a deep copy of the video. The tag slice is copied so
// controller-local mutations never reach the seeded dataset.
func (v Video) Clone() Video {
	out := v
	out.Tags = append([]string(nil), v.Tags...)
	return out
}
