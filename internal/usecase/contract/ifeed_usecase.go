package usecasecontract

import (
	"context"

	"github.com/vibra-app/vibra/internal/domain/entity"
)

// FeedState is the observable state of one session's feed controller.
type FeedState struct {
	ActiveIndex int  `json:"active_index"`
	IsScrolling bool `json:"is_scrolling"`
}

// NavigateResult is the outcome of a keyboard navigation step.
type NavigateResult struct {
	State        FeedState `json:"state"`
	ScrollTarget float64   `json:"scroll_target"`
	Moved        bool      `json:"moved"`
}

// IFeedUseCase manages one feed controller per session.
type IFeedUseCase interface {
	// Feed returns the session's video list, creating the controller on
	// first use.
	Feed(ctx context.Context, sessionID string) ([]entity.Video, error)
	Scroll(ctx context.Context, sessionID string, scrollTop, viewportHeight float64) (FeedState, error)
	Navigate(ctx context.Context, sessionID, direction string) (NavigateResult, error)
	State(ctx context.Context, sessionID string) (FeedState, error)
	ActiveVideo(ctx context.Context, sessionID string) (*entity.Video, error)
	ToggleLike(ctx context.Context, sessionID, videoID string) (*entity.Video, error)
	Share(ctx context.Context, sessionID, videoID string) (*entity.Video, error)
}

// IFeedRegistry tears down per-session feed state; consumed by the
// session usecase on logout.
type IFeedRegistry interface {
	Teardown(sessionID string)
}
