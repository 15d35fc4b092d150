package memstore

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vibra-app/vibra/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Seed returns the fixed dataset the platform runs on. Every entity the
// screens display comes from here; the set is loaded once per process.
func Seed() Dataset {
	base := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	users := []entity.User{
		{
			ID:            "user-1",
			Username:      "cryptoqueen",
			Email:         "queen@vibra.app",
			Avatar:        "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=400",
			Role:          entity.UserRoleCreator,
			Verified:      true,
			Followers:     125400,
			Following:     89,
			TotalEarned:   dec("15420.50"),
			WalletBalance: dec("2340.75"),
			WalletAddress: strPtr("7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"),
			CreatedAt:     base.AddDate(-1, -3, 0),
			Bio:           strPtr("Daily crypto market breakdowns. Not financial advice."),
		},
		{
			ID:            "user-2",
			Username:      "nftmaster",
			Email:         "master@vibra.app",
			Avatar:        "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=400",
			Role:          entity.UserRoleCreator,
			Verified:      true,
			Followers:     89200,
			Following:     156,
			TotalEarned:   dec("8930.25"),
			WalletBalance: dec("1250.00"),
			CreatedAt:     base.AddDate(-1, 0, 0),
			Bio:           strPtr("Minting, flipping, collecting."),
		},
		{
			ID:            "user-3",
			Username:      "defi_dave",
			Email:         "dave@vibra.app",
			Avatar:        "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=400",
			Role:          entity.UserRoleUser,
			Verified:      false,
			Followers:     3400,
			Following:     421,
			TotalEarned:   dec("156.80"),
			WalletBalance: dec("89.20"),
			CreatedAt:     base.AddDate(0, -6, 0),
		},
		{
			ID:            "user-4",
			Username:      "mod_maria",
			Email:         "maria@vibra.app",
			Avatar:        "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=400",
			Role:          entity.UserRoleModerator,
			Verified:      true,
			Followers:     1200,
			Following:     54,
			TotalEarned:   dec("420.00"),
			WalletBalance: dec("310.40"),
			CreatedAt:     base.AddDate(-2, 0, 0),
		},
		{
			ID:            "user-5",
			Username:      "vibra_admin",
			Email:         "admin@vibra.app",
			Avatar:        "https://images.pexels.com/photos/91227/pexels-photo-91227.jpeg?auto=compress&cs=tinysrgb&w=400",
			Role:          entity.UserRoleAdmin,
			Verified:      true,
			Followers:     0,
			Following:     0,
			TotalEarned:   decimal.Zero,
			WalletBalance: decimal.Zero,
			CreatedAt:     base.AddDate(-2, -6, 0),
		},
	}

	videos := []entity.Video{
		{
			ID: "video-1", UserID: "user-1", Username: "cryptoqueen",
			Avatar:       users[0].Avatar,
			Title:        "Bitcoin to 100k? My honest take",
			Description:  "Reading the charts so you don't have to. #bitcoin #trading",
			VideoURL:     "https://cdn.vibra.app/videos/video-1.mp4",
			ThumbnailURL: "https://cdn.vibra.app/thumbs/video-1.jpg",
			Duration:     58, Likes: 12400, Comments: 892, Shares: 445, Views: 156000,
			Tags: []string{"bitcoin", "trading", "crypto"}, CreatedAt: base.AddDate(0, 0, -2),
			Rewards: dec("234.50"),
		},
		{
			ID: "video-2", UserID: "user-2", Username: "nftmaster",
			Avatar:       users[1].Avatar,
			Title:        "I spent 5 ETH on this NFT so you don't have to",
			Description:  "The mint that went very wrong. #nft #ethereum",
			VideoURL:     "https://cdn.vibra.app/videos/video-2.mp4",
			ThumbnailURL: "https://cdn.vibra.app/thumbs/video-2.jpg",
			Duration:     45, Likes: 8900, Comments: 534, Shares: 289, Views: 98000,
			Tags: []string{"nft", "ethereum", "crypto"}, CreatedAt: base.AddDate(0, 0, -3),
			Rewards: dec("178.90"),
		},
		{
			ID: "video-3", UserID: "user-1", Username: "cryptoqueen",
			Avatar:       users[0].Avatar,
			Title:        "DeFi yields explained in 60 seconds",
			Description:  "Where the APY actually comes from. #defi",
			VideoURL:     "https://cdn.vibra.app/videos/video-3.mp4",
			ThumbnailURL: "https://cdn.vibra.app/thumbs/video-3.jpg",
			Duration:     60, Likes: 15600, Comments: 1203, Shares: 678, Views: 203000,
			Tags: []string{"defi", "crypto", "yield"}, CreatedAt: base.AddDate(0, 0, -1),
			Rewards: dec("312.75"),
		},
		{
			ID: "video-4", UserID: "user-3", Username: "defi_dave",
			Avatar:       users[2].Avatar,
			Title:        "My first airdrop: 400 VIBRA",
			Description:  "Proof it works. #airdrop #vibra",
			VideoURL:     "https://cdn.vibra.app/videos/video-4.mp4",
			ThumbnailURL: "https://cdn.vibra.app/thumbs/video-4.jpg",
			Duration:     34, Likes: 450, Comments: 67, Shares: 23, Views: 5600,
			Tags: []string{"airdrop", "vibra"}, CreatedAt: base.AddDate(0, 0, -5),
			Rewards: dec("12.40"),
		},
		{
			ID: "video-5", UserID: "user-2", Username: "nftmaster",
			Avatar:       users[1].Avatar,
			Title:        "Cold wallet setup, step by step",
			Description:  "Keep your keys off the exchange. #blockchain #security",
			VideoURL:     "https://cdn.vibra.app/videos/video-5.mp4",
			ThumbnailURL: "https://cdn.vibra.app/thumbs/video-5.jpg",
			Duration:     72, Likes: 6700, Comments: 412, Shares: 534, Views: 87000,
			Tags: []string{"blockchain", "security", "crypto"}, CreatedAt: base.AddDate(0, 0, -7),
			Rewards: dec("145.20"),
		},
	}

	comments := []entity.Comment{
		{ID: "comment-1", UserID: "user-3", Username: "defi_dave", Avatar: users[2].Avatar,
			VideoID: "video-1", Content: "Calling it now, this ages well", Likes: 340, CreatedAt: base.AddDate(0, 0, -2)},
		{ID: "comment-2", UserID: "user-2", Username: "nftmaster", Avatar: users[1].Avatar,
			VideoID: "video-1", Content: "The volume chart at 0:31 is the whole story", Likes: 120, CreatedAt: base.AddDate(0, 0, -2)},
		{ID: "comment-3", UserID: "user-1", Username: "cryptoqueen", Avatar: users[0].Avatar,
			VideoID: "video-2", Content: "Expensive lesson, great content", Likes: 89, CreatedAt: base.AddDate(0, 0, -3)},
		{ID: "comment-4", UserID: "user-3", Username: "defi_dave", Avatar: users[2].Avatar,
			VideoID: "video-5", Content: "Finally someone shows the passphrase step properly", Likes: 56, CreatedAt: base.AddDate(0, 0, -6)},
	}

	transactions := []entity.Transaction{
		{ID: "tx-1", UserID: "user-1", Type: entity.TransactionTypeReward, Amount: dec("234.50"),
			Description: "Weekly creator rewards", Status: entity.TransactionStatusCompleted,
			TxHash: strPtr("5KJp89nXo2fDqW3sYv1zR8mC4tA6bE7gH9iL2kM3nP4q"), CreatedAt: base.AddDate(0, 0, -2)},
		{ID: "tx-2", UserID: "user-1", Type: entity.TransactionTypeWithdrawal, Amount: dec("-500.00"),
			Description: "Withdrawal to wallet", Status: entity.TransactionStatusCompleted,
			TxHash: strPtr("8RTs45mWp1eGhX6uZv9yQ2nB5cD7fJ3kL8oM1iN6rS0t"), CreatedAt: base.AddDate(0, 0, -4)},
		{ID: "tx-3", UserID: "user-2", Type: entity.TransactionTypeReward, Amount: dec("178.90"),
			Description: "Weekly creator rewards", Status: entity.TransactionStatusCompleted, CreatedAt: base.AddDate(0, 0, -3)},
		{ID: "tx-4", UserID: "user-3", Type: entity.TransactionTypeTip, Amount: dec("25.00"),
			Description: "Tip from @cryptoqueen", Status: entity.TransactionStatusCompleted, CreatedAt: base.AddDate(0, 0, -5)},
		{ID: "tx-5", UserID: "user-1", Type: entity.TransactionTypeReward, Amount: dec("45.75"),
			Description: "Engagement rewards", Status: entity.TransactionStatusPending, CreatedAt: base.AddDate(0, 0, -1)},
		{ID: "tx-6", UserID: "user-2", Type: entity.TransactionTypeWithdrawal, Amount: dec("-200.00"),
			Description: "Withdrawal to wallet", Status: entity.TransactionStatusFailed, CreatedAt: base.AddDate(0, 0, -6)},
	}

	reports := []entity.Report{
		{ID: "report-1", ReporterID: "user-3", ContentID: "video-2", ContentType: entity.ReportContentVideo,
			Reason: "Misleading content", Description: "Claims guaranteed returns on the mint",
			Status: entity.ReportStatusPending, CreatedAt: base.AddDate(0, 0, -1)},
		{ID: "report-2", ReporterID: "user-1", ContentID: "comment-4", ContentType: entity.ReportContentComment,
			Reason: "Spam", Description: "Same link posted under every video",
			Status: entity.ReportStatusPending, CreatedAt: base.AddDate(0, 0, -1)},
		{ID: "report-3", ReporterID: "user-2", ContentID: "user-3", ContentType: entity.ReportContentUser,
			Reason: "Impersonation", Description: "Copies another creator's profile",
			Status: entity.ReportStatusResolved, CreatedAt: base.AddDate(0, 0, -3)},
	}

	return Dataset{
		Users:        users,
		Videos:       videos,
		Comments:     comments,
		Transactions: transactions,
		Reports:      reports,
	}
}
