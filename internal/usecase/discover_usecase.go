package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/vibra-app/vibra/internal/domain/contract"
	"github.com/vibra-app/vibra/internal/domain/entity"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

// Discover categories.
const (
	CategoryTrending = "trending"
	CategoryNew      = "new"
	CategoryPopular  = "popular"
	CategoryLiked    = "liked"
)

// DiscoverUsecase serves search and content discovery over the seeded
// video set.
type DiscoverUsecase struct {
	videoRepo contract.IVideoRepository
}

// NewDiscoverUsecase creates a new DiscoverUsecase instance.
func NewDiscoverUsecase(videoRepo contract.IVideoRepository) *DiscoverUsecase {
	return &DiscoverUsecase{videoRepo: videoRepo}
}

var _ usecasecontract.IDiscoverUseCase = (*DiscoverUsecase)(nil)

// Search filters videos by a case-insensitive query over title,
// description and tags, then orders by category. An empty query matches
// everything; an empty or unknown category falls back to trending.
func (uc *DiscoverUsecase) Search(ctx context.Context, query, category string) ([]entity.Video, error) {
	videos, err := uc.videoRepo.ListVideos(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	var out []entity.Video
	for _, v := range videos {
		if q == "" || matchesQuery(v, q) {
			out = append(out, v)
		}
	}

	switch category {
	case CategoryNew:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case CategoryLiked:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Likes > out[j].Likes
		})
	case CategoryTrending, CategoryPopular, "":
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Views > out[j].Views
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Views > out[j].Views
		})
	}
	return out, nil
}

// TrendingTags counts tag usage across the video set, most used first.
// Ties break alphabetically so the ordering is stable.
func (uc *DiscoverUsecase) TrendingTags(ctx context.Context) ([]usecasecontract.TagCount, error) {
	videos, err := uc.videoRepo.ListVideos(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, v := range videos {
		for _, tag := range v.Tags {
			counts[strings.ToLower(tag)]++
		}
	}

	out := make([]usecasecontract.TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, usecasecontract.TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out, nil
}

func matchesQuery(v entity.Video, q string) bool {
	if strings.Contains(strings.ToLower(v.Title), q) ||
		strings.Contains(strings.ToLower(v.Description), q) {
		return true
	}
	for _, tag := range v.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
