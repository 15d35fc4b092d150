package usecasecontract

import (
	"context"

	"github.com/vibra-app/vibra/internal/domain/entity"
)

// TagCount is one trending tag with its usage count.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}

// IDiscoverUseCase serves search and content discovery.
type IDiscoverUseCase interface {
	// Search filters videos by a case-insensitive query over title,
	// description and tags, ordered by the named category.
	Search(ctx context.Context, query, category string) ([]entity.Video, error)
	TrendingTags(ctx context.Context) ([]TagCount, error)
}
