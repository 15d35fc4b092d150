package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vibra-app/vibra/internal/domain/contract"
	"github.com/vibra-app/vibra/internal/domain/entity"
	"github.com/vibra-app/vibra/internal/feed"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

// Feed operation errors.
var (
	ErrUnknownDirection = errors.New("unknown navigation direction")
	ErrVideoNotInFeed   = errors.New("video not in feed")
)

// FeedUsecase owns one feed controller per session, created lazily on
// first use and torn down on logout.
type FeedUsecase struct {
	videoRepo contract.IVideoRepository
	logger    usecasecontract.IAppLogger
	config    usecasecontract.IConfigProvider
	share     feed.ShareFunc

	mu          sync.Mutex
	controllers map[string]*feed.Controller
}

// NewFeedUsecase creates a new FeedUsecase instance. share may be nil
// when no external share capability is configured.
func NewFeedUsecase(
	videoRepo contract.IVideoRepository,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	share feed.ShareFunc,
) *FeedUsecase {
	return &FeedUsecase{
		videoRepo:   videoRepo,
		logger:      logger,
		config:      cfg,
		share:       share,
		controllers: make(map[string]*feed.Controller),
	}
}

var (
	_ usecasecontract.IFeedUseCase  = (*FeedUsecase)(nil)
	_ usecasecontract.IFeedRegistry = (*FeedUsecase)(nil)
)

// controller returns the session's controller, creating it from the
// current video set on first use.
func (uc *FeedUsecase) controller(ctx context.Context, sessionID string) (*feed.Controller, error) {
	uc.mu.Lock()
	if c, ok := uc.controllers[sessionID]; ok {
		uc.mu.Unlock()
		return c, nil
	}
	uc.mu.Unlock()

	videos, err := uc.videoRepo.ListVideos(ctx)
	if err != nil {
		return nil, fmt.Errorf("feed snapshot: %w", err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if c, ok := uc.controllers[sessionID]; ok {
		return c, nil
	}
	c := feed.NewController(videos, uc.config.GetScrollSettleWindow(), uc.share, uc.logger)
	uc.controllers[sessionID] = c
	return c, nil
}

// Feed returns the session's video list in feed order.
func (uc *FeedUsecase) Feed(ctx context.Context, sessionID string) ([]entity.Video, error) {
	c, err := uc.controller(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return c.Videos(), nil
}

// Scroll processes a scroll event and returns the resulting state.
func (uc *FeedUsecase) Scroll(ctx context.Context, sessionID string, scrollTop, viewportHeight float64) (usecasecontract.FeedState, error) {
	c, err := uc.controller(ctx, sessionID)
	if err != nil {
		return usecasecontract.FeedState{}, err
	}
	c.HandleScroll(scrollTop, viewportHeight)
	return uc.stateOf(c), nil
}

// Navigate applies a keyboard step. Boundary steps are reported as not
// moved with no scroll target.
func (uc *FeedUsecase) Navigate(ctx context.Context, sessionID, direction string) (usecasecontract.NavigateResult, error) {
	c, err := uc.controller(ctx, sessionID)
	if err != nil {
		return usecasecontract.NavigateResult{}, err
	}
	var dir feed.Direction
	switch direction {
	case "up":
		dir = feed.DirectionUp
	case "down":
		dir = feed.DirectionDown
	default:
		return usecasecontract.NavigateResult{}, ErrUnknownDirection
	}
	target, moved := c.Navigate(dir)
	return usecasecontract.NavigateResult{
		State:        uc.stateOf(c),
		ScrollTarget: target,
		Moved:        moved,
	}, nil
}

// State returns the session's current feed state.
func (uc *FeedUsecase) State(ctx context.Context, sessionID string) (usecasecontract.FeedState, error) {
	c, err := uc.controller(ctx, sessionID)
	if err != nil {
		return usecasecontract.FeedState{}, err
	}
	return uc.stateOf(c), nil
}

// ActiveVideo returns the video eligible for playback, or nil while the
// feed is settling.
func (uc *FeedUsecase) ActiveVideo(ctx context.Context, sessionID string) (*entity.Video, error) {
	c, err := uc.controller(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	v, ok := c.ActiveVideo()
	if !ok {
		return nil, nil
	}
	return &v, nil
}

// ToggleLike flips the viewer's like on a video.
func (uc *FeedUsecase) ToggleLike(ctx context.Context, sessionID, videoID string) (*entity.Video, error) {
	c, err := uc.controller(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	v, ok := c.ToggleLike(videoID)
	if !ok {
		return nil, ErrVideoNotInFeed
	}
	return &v, nil
}

// Share increments a video's share counter.
func (uc *FeedUsecase) Share(ctx context.Context, sessionID, videoID string) (*entity.Video, error) {
	c, err := uc.controller(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	v, ok := c.Share(videoID)
	if !ok {
		return nil, ErrVideoNotInFeed
	}
	return &v, nil
}

// Teardown closes and removes the session's controller, stopping its
// settle timer.
func (uc *FeedUsecase) Teardown(sessionID string) {
	uc.mu.Lock()
	c, ok := uc.controllers[sessionID]
	if ok {
		delete(uc.controllers, sessionID)
	}
	uc.mu.Unlock()
	if ok {
		c.Close()
	}
}

func (uc *FeedUsecase) stateOf(c *feed.Controller) usecasecontract.FeedState {
	return usecasecontract.FeedState{
		ActiveIndex: c.ActiveIndex(),
		IsScrolling: c.IsScrolling(),
	}
}
