package memstore

import (
	"context"

	"github.com/vibra-app/vibra/internal/domain/contract"
	"github.com/vibra-app/vibra/internal/domain/entity"
)

// CommentRepository is the in-memory implementation of contract.ICommentRepository.
type CommentRepository struct {
	store *Store
}

// NewCommentRepository creates a comment repository over the shared store.
func NewCommentRepository(store *Store) contract.ICommentRepository {
	return &CommentRepository{store: store}
}

var _ contract.ICommentRepository = (*CommentRepository)(nil)

// GetCommentByID retrieves a comment by ID.
func (r *CommentRepository) GetCommentByID(ctx context.Context, id string) (*entity.Comment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	i, ok := r.store.commentsByID[id]
	if !ok {
		return nil, contract.ErrCommentNotFound
	}
	c := r.store.comments[i]
	return &c, nil
}

// ListCommentsByVideo returns the comments under a video in seeded order.
func (r *CommentRepository) ListCommentsByVideo(ctx context.Context, videoID string) ([]entity.Comment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []entity.Comment
	for i := range r.store.comments {
		if r.store.comments[i].VideoID == videoID {
			out = append(out, r.store.comments[i])
		}
	}
	return out, nil
}
