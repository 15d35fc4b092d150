package memstore

import (
	"context"

	"github.com/vibra-app/vibra/internal/domain/contract"
	"github.com/vibra-app/vibra/internal/domain/entity"
)

// VideoRepository is the in-memory implementation of contract.IVideoRepository.
type VideoRepository struct {
	store *Store
}

// NewVideoRepository creates a video repository over the shared store.
func NewVideoRepository(store *Store) contract.IVideoRepository {
	return &VideoRepository{store: store}
}

var _ contract.IVideoRepository = (*VideoRepository)(nil)

// CreateVideo appends a new video to the end of the feed order.
func (r *VideoRepository) CreateVideo(ctx context.Context, video *entity.Video) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.videosByID[video.ID]; ok {
		return contract.ErrDuplicateEntry
	}
	r.store.videos = append(r.store.videos, video.Clone())
	r.store.videosByID[video.ID] = len(r.store.videos) - 1
	return nil
}

// GetVideoByID retrieves a video by ID.
func (r *VideoRepository) GetVideoByID(ctx context.Context, id string) (*entity.Video, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i, ok := r.store.videosByID[id]
	if !ok {
		return nil, contract.ErrVideoNotFound
	}
	v := r.store.videos[i].Clone()
	return &v, nil
}

// ListVideos returns deep copies of every video in feed order.
func (r *VideoRepository) ListVideos(ctx context.Context) ([]entity.Video, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]entity.Video, 0, len(r.store.videos))
	for i := range r.store.videos {
		out = append(out, r.store.videos[i].Clone())
	}
	return out, nil
}

// ListVideosByUser returns the videos owned by a user, in feed order.
func (r *VideoRepository) ListVideosByUser(ctx context.Context, userID string) ([]entity.Video, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.Video
	for i := range r.store.videos {
		if r.store.videos[i].UserID == userID {
			out = append(out, r.store.videos[i].Clone())
		}
	}
	return out, nil
}

// CountVideos returns the number of videos.
func (r *VideoRepository) CountVideos(ctx context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.videos)), nil
}
