package dto

// LoginRequest is the payload for an email/password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// WalletLoginRequest is the payload for a wallet-address login.
type WalletLoginRequest struct {
	Address string `json:"address" binding:"required"`
}

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Username string `json:"username" binding:"required,min=3,max=30"`
}

// UpdateProfileRequest carries the editable profile fields; nil fields
// are left untouched.
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty" binding:"omitempty,min=3,max=30"`
	Bio      *string `json:"bio,omitempty" binding:"omitempty,max=200"`
	Avatar   *string `json:"avatar,omitempty" binding:"omitempty,url"`
}

// ScrollRequest reports a scroll position of the feed viewport.
type ScrollRequest struct {
	ScrollTop      float64 `json:"scroll_top" binding:"gte=0"`
	ViewportHeight float64 `json:"viewport_height" binding:"required,gt=0"`
}

// NavigateRequest steps the feed one video up or down.
type NavigateRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// WithdrawRequest is the payload for a withdrawal. The amount travels
// as a string so it survives JSON number precision.
type WithdrawRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// UploadRequest describes a video upload submission.
type UploadRequest struct {
	Title       string `json:"title" binding:"required,max=120"`
	Description string `json:"description" binding:"max=500"`
	Tags        string `json:"tags" binding:"omitempty,taglist"`
	FileName    string `json:"file_name" binding:"required,videofile"`
	FileSize    int64  `json:"file_size" binding:"required,gt=0"`
}

// RewardRatesRequest updates the platform reward rates. Amounts travel
// as strings, same as withdrawal amounts.
type RewardRatesRequest struct {
	Like    string `json:"like" binding:"required"`
	Comment string `json:"comment" binding:"required"`
	Share   string `json:"share" binding:"required"`
	Upload  string `json:"upload" binding:"required"`
}
