package entity

import "time"

// Comment is display-only: it is seeded once and never mutated.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar"`
	VideoID   string    `json:"video_id"`
	Content   string    `json:"content"`
	Likes     int64     `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	IsLiked   bool      `json:"is_liked"`
}
