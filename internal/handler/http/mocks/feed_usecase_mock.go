package mocks

import (
	"context"
	"errors"

	"github.com/vibra-app/vibra/internal/domain/entity"
	"github.com/vibra-app/vibra/internal/usecase"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

// MockFeedUsecase is a mock implementation of the feed usecase
type MockFeedUsecase struct {
	// Control mock behavior
	ShouldFailFeed   bool
	ShouldFailScroll bool
	Settling         bool

	// Return values
	MockVideos []entity.Video
	MockState  usecasecontract.FeedState
}

var _ usecasecontract.IFeedUseCase = (*MockFeedUsecase)(nil)

func NewMockFeedUsecase() *MockFeedUsecase {
	return &MockFeedUsecase{
		MockVideos: []entity.Video{
			{ID: "video-1", Title: "First"},
			{ID: "video-2", Title: "Second"},
		},
	}
}

func (m *MockFeedUsecase) Feed(ctx context.Context, sessionID string) ([]entity.Video, error) {
	if m.ShouldFailFeed {
		return nil, errors.New("feed failed")
	}
	return m.MockVideos, nil
}

func (m *MockFeedUsecase) Scroll(ctx context.Context, sessionID string, scrollTop, viewportHeight float64) (usecasecontract.FeedState, error) {
	if m.ShouldFailScroll {
		return usecasecontract.FeedState{}, errors.New("scroll failed")
	}
	return m.MockState, nil
}

func (m *MockFeedUsecase) Navigate(ctx context.Context, sessionID, direction string) (usecasecontract.NavigateResult, error) {
	return usecasecontract.NavigateResult{State: m.MockState, Moved: true}, nil
}

func (m *MockFeedUsecase) State(ctx context.Context, sessionID string) (usecasecontract.FeedState, error) {
	return m.MockState, nil
}

func (m *MockFeedUsecase) ActiveVideo(ctx context.Context, sessionID string) (*entity.Video, error) {
	if m.Settling || len(m.MockVideos) == 0 {
		return nil, nil
	}
	video := m.MockVideos[0]
	return &video, nil
}

func (m *MockFeedUsecase) ToggleLike(ctx context.Context, sessionID, videoID string) (*entity.Video, error) {
	for _, v := range m.MockVideos {
		if v.ID == videoID {
			v.IsLiked = !v.IsLiked
			v.Likes++
			return &v, nil
		}
	}
	return nil, usecase.ErrVideoNotInFeed
}

func (m *MockFeedUsecase) Share(ctx context.Context, sessionID, videoID string) (*entity.Video, error) {
	for _, v := range m.MockVideos {
		if v.ID == videoID {
			v.Shares++
			return &v, nil
		}
	}
	return nil, usecase.ErrVideoNotInFeed
}
