// Package feed implements the scroll-synchronized video feed: an ordered
// list of videos, one screen per item, with a single "active" entry
// tracked from scroll position and keyboard navigation.
package feed

import (
	"math"
	"sync"
	"time"

	"github.com/vibra-app/vibra/internal/domain/entity"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

// Direction is a keyboard navigation step.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
)

// ShareFunc is the external share capability. It is best-effort: a nil
// func means the capability is absent, and a failing one is only logged.
type ShareFunc func(video entity.Video) error

// Controller owns one viewer's feed state. All methods are safe for
// concurrent use; the settle timer fires on its own goroutine.
type Controller struct {
	mu             sync.Mutex
	videos         []entity.Video
	activeIndex    int
	viewportHeight float64
	isScrolling    bool
	settleWindow   time.Duration
	settleTimer    *time.Timer
	closed         bool

	share  ShareFunc
	logger usecasecontract.IAppLogger
}

// NewController creates a controller over a snapshot of the feed. The
// controller owns the slice from here on.
func NewController(videos []entity.Video, settleWindow time.Duration, share ShareFunc, logger usecasecontract.IAppLogger) *Controller {
	return &Controller{
		videos:       videos,
		settleWindow: settleWindow,
		share:        share,
		logger:       logger,
	}
}

// HandleScroll processes one scroll event: the active index becomes
// round(scrollTop/viewportHeight) clamped to the list bounds, and the
// controller is considered scrolling until the settle window elapses with
// no further events. Events with a non-positive viewport are ignored.
func (c *Controller) HandleScroll(scrollTop, viewportHeight float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || viewportHeight <= 0 || len(c.videos) == 0 {
		return
	}
	c.viewportHeight = viewportHeight

	c.isScrolling = true
	if c.settleTimer != nil {
		c.settleTimer.Stop()
	}
	c.settleTimer = time.AfterFunc(c.settleWindow, c.settle)

	c.activeIndex = clamp(int(math.Round(scrollTop/viewportHeight)), 0, len(c.videos)-1)
}

// settle clears the scrolling flag once the window elapses.
func (c *Controller) settle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.isScrolling = false
}

// Navigate moves the active index one step and reports the scroll target
// the client should animate to. At either boundary the call is a no-op:
// the index is unchanged and no scroll is emitted. The programmatic
// scroll is fed back through HandleScroll, matching the feedback loop of
// a real scroll container.
func (c *Controller) Navigate(dir Direction) (scrollTop float64, moved bool) {
	c.mu.Lock()
	if c.closed || len(c.videos) == 0 {
		c.mu.Unlock()
		return 0, false
	}
	next := c.activeIndex
	switch dir {
	case DirectionUp:
		next--
	case DirectionDown:
		next++
	}
	if next < 0 || next > len(c.videos)-1 {
		c.mu.Unlock()
		return 0, false
	}
	height := c.viewportHeight
	c.mu.Unlock()

	if height <= 0 {
		height = 1
	}
	target := float64(next) * height
	c.HandleScroll(target, height)
	return target, true
}

// ActiveIndex returns the current active index.
func (c *Controller) ActiveIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeIndex
}

// IsScrolling reports whether the feed is still settling.
func (c *Controller) IsScrolling() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isScrolling
}

// ActiveVideo returns the video eligible for playback. While the feed is
// settling there is no active video, even if the index is unchanged.
func (c *Controller) ActiveVideo() (entity.Video, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isScrolling || len(c.videos) == 0 {
		return entity.Video{}, false
	}
	return c.videos[c.activeIndex].Clone(), true
}

// Videos returns a copy of the controller's list in feed order.
func (c *Controller) Videos() []entity.Video {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entity.Video, 0, len(c.videos))
	for i := range c.videos {
		out = append(out, c.videos[i].Clone())
	}
	return out
}

// ToggleLike flips the viewer's like on a video and adjusts its counter,
// replacing the list with a new copy in a single update. Unknown IDs are
// ignored.
func (c *Controller) ToggleLike(videoID string) (entity.Video, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var updated entity.Video
	found := false
	next := make([]entity.Video, len(c.videos))
	for i := range c.videos {
		v := c.videos[i].Clone()
		if v.ID == videoID {
			if v.IsLiked {
				v.Likes--
			} else {
				v.Likes++
			}
			v.IsLiked = !v.IsLiked
			updated = v
			found = true
		}
		next[i] = v
	}
	if !found {
		return entity.Video{}, false
	}
	c.videos = next
	return updated, true
}

// Share increments a video's share counter and invokes the external share
// capability when present. Capability failures are logged, never
// surfaced; the counter increment stands regardless.
func (c *Controller) Share(videoID string) (entity.Video, bool) {
	c.mu.Lock()
	var updated entity.Video
	found := false
	next := make([]entity.Video, len(c.videos))
	for i := range c.videos {
		v := c.videos[i].Clone()
		if v.ID == videoID {
			v.Shares++
			updated = v
			found = true
		}
		next[i] = v
	}
	if found {
		c.videos = next
	}
	share := c.share
	c.mu.Unlock()

	if !found {
		return entity.Video{}, false
	}
	if share != nil {
		if err := share(updated); err != nil && c.logger != nil {
			c.logger.Warnf("share capability failed for video %s: %v", videoID, err)
		}
	}
	return updated, true
}

// Close stops the settle timer and freezes the controller. Called on
// logout so abandoned feeds do not leave timers running.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.settleTimer != nil {
		c.settleTimer.Stop()
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
