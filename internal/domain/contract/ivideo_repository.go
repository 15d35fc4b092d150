package contract

import (
	"context"

	"github.com/vibra-app/vibra/internal/domain/entity"
)

// IVideoRepository exposes the seeded video set. ListVideos returns copies
// in feed order; callers own the returned slices.
type IVideoRepository interface {
	CreateVideo(ctx context.Context, video *entity.Video) error
	GetVideoByID(ctx context.Context, id string) (*entity.Video, error)
	ListVideos(ctx context.Context) ([]entity.Video, error)
	ListVideosByUser(ctx context.Context, userID string) ([]entity.Video, error)
	CountVideos(ctx context.Context) (int64, error)
}
