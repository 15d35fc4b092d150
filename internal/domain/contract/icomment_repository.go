package contract

import (
	"context"

	"github.com/vibra-app/vibra/internal/domain/entity"
)

// ICommentRepository exposes the seeded, display-only comment set.
type ICommentRepository interface {
	GetCommentByID(ctx context.Context, id string) (*entity.Comment, error)
	ListCommentsByVideo(ctx context.Context, videoID string) ([]entity.Comment, error)
}
