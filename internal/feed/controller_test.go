package feed_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vibra-app/vibra/internal/domain/entity"
	"github.com/vibra-app/vibra/internal/feed"
)

const settleWindow = 30 * time.Millisecond

func testVideos(n int) []entity.Video {
	videos := make([]entity.Video, 0, n)
	for i := 0; i < n; i++ {
		videos = append(videos, entity.Video{
			ID:    "video-" + string(rune('a'+i)),
			Title: "Video " + string(rune('A'+i)),
			Likes: 100,
		})
	}
	return videos
}

func TestHandleScroll_RoundsToNearestIndex(t *testing.T) {
	c := feed.NewController(testVideos(5), settleWindow, nil, nil)

	c.HandleScroll(0, 800)
	assert.Equal(t, 0, c.ActiveIndex())

	// 390/800 rounds down, 410/800 rounds up
	c.HandleScroll(390, 800)
	assert.Equal(t, 0, c.ActiveIndex())

	c.HandleScroll(410, 800)
	assert.Equal(t, 1, c.ActiveIndex())

	c.HandleScroll(1600, 800)
	assert.Equal(t, 2, c.ActiveIndex())
}

func TestHandleScroll_ClampsToBounds(t *testing.T) {
	c := feed.NewController(testVideos(3), settleWindow, nil, nil)

	c.HandleScroll(99999, 800)
	assert.Equal(t, 2, c.ActiveIndex())

	c.HandleScroll(0, 800)
	assert.Equal(t, 0, c.ActiveIndex())
}

func TestHandleScroll_IgnoresNonPositiveViewport(t *testing.T) {
	c := feed.NewController(testVideos(3), settleWindow, nil, nil)
	c.HandleScroll(1600, 800)
	assert.Equal(t, 2, c.ActiveIndex())

	c.HandleScroll(0, 0)
	assert.Equal(t, 2, c.ActiveIndex())
	c.HandleScroll(0, -5)
	assert.Equal(t, 2, c.ActiveIndex())
}

func TestScrollSettling(t *testing.T) {
	c := feed.NewController(testVideos(3), settleWindow, nil, nil)

	c.HandleScroll(800, 800)
	assert.True(t, c.IsScrolling())

	_, ok := c.ActiveVideo()
	assert.False(t, ok, "no active video while settling")

	time.Sleep(settleWindow + 20*time.Millisecond)
	assert.False(t, c.IsScrolling())

	video, ok := c.ActiveVideo()
	assert.True(t, ok)
	assert.Equal(t, "video-b", video.ID)
}

func TestScrollSettling_RapidEventsExtendTheWindow(t *testing.T) {
	c := feed.NewController(testVideos(5), settleWindow, nil, nil)

	// Each event lands inside the previous window, so the flag must hold.
	for i := 0; i < 4; i++ {
		c.HandleScroll(float64(i)*800, 800)
		time.Sleep(settleWindow / 3)
		assert.True(t, c.IsScrolling())
	}

	time.Sleep(settleWindow + 20*time.Millisecond)
	assert.False(t, c.IsScrolling())
	assert.Equal(t, 3, c.ActiveIndex())
}

func TestNavigate_StepsAndFeedsBackThroughScroll(t *testing.T) {
	c := feed.NewController(testVideos(5), settleWindow, nil, nil)
	c.HandleScroll(0, 800)

	target, moved := c.Navigate(feed.DirectionDown)
	assert.True(t, moved)
	assert.Equal(t, 800.0, target)
	assert.Equal(t, 1, c.ActiveIndex())

	target, moved = c.Navigate(feed.DirectionDown)
	assert.True(t, moved)
	assert.Equal(t, 1600.0, target)
	assert.Equal(t, 2, c.ActiveIndex())

	// a navigation is a programmatic scroll, so the feed settles again
	assert.True(t, c.IsScrolling())
}

func TestNavigate_BoundaryIsNoOp(t *testing.T) {
	c := feed.NewController(testVideos(3), settleWindow, nil, nil)
	c.HandleScroll(0, 800)

	_, moved := c.Navigate(feed.DirectionUp)
	assert.False(t, moved)
	assert.Equal(t, 0, c.ActiveIndex())

	c.HandleScroll(1600, 800)
	_, moved = c.Navigate(feed.DirectionDown)
	assert.False(t, moved)
	assert.Equal(t, 2, c.ActiveIndex())
}

func TestNavigate_EmptyFeed(t *testing.T) {
	c := feed.NewController(nil, settleWindow, nil, nil)
	_, moved := c.Navigate(feed.DirectionDown)
	assert.False(t, moved)
}

func TestToggleLike_FlipsAndRestores(t *testing.T) {
	c := feed.NewController(testVideos(3), settleWindow, nil, nil)

	video, ok := c.ToggleLike("video-b")
	assert.True(t, ok)
	assert.True(t, video.IsLiked)
	assert.Equal(t, int64(101), video.Likes)

	video, ok = c.ToggleLike("video-b")
	assert.True(t, ok)
	assert.False(t, video.IsLiked)
	assert.Equal(t, int64(100), video.Likes)
}

func TestToggleLike_UnknownID(t *testing.T) {
	c := feed.NewController(testVideos(3), settleWindow, nil, nil)
	_, ok := c.ToggleLike("video-zz")
	assert.False(t, ok)

	// the list is untouched
	for _, v := range c.Videos() {
		assert.Equal(t, int64(100), v.Likes)
		assert.False(t, v.IsLiked)
	}
}

func TestShare_IncrementsDespiteFailingCapability(t *testing.T) {
	called := 0
	shareFn := func(video entity.Video) error {
		called++
		return errors.New("clipboard unavailable")
	}
	c := feed.NewController(testVideos(3), settleWindow, shareFn, nil)

	video, ok := c.Share("video-a")
	assert.True(t, ok)
	assert.Equal(t, int64(1), video.Shares)
	assert.Equal(t, 1, called)

	video, ok = c.Share("video-a")
	assert.True(t, ok)
	assert.Equal(t, int64(2), video.Shares)
}

func TestVideos_ReturnsIndependentCopies(t *testing.T) {
	c := feed.NewController(testVideos(2), settleWindow, nil, nil)

	list := c.Videos()
	list[0].Likes = 9999

	fresh := c.Videos()
	assert.Equal(t, int64(100), fresh[0].Likes)
}

func TestClose_FreezesController(t *testing.T) {
	c := feed.NewController(testVideos(3), settleWindow, nil, nil)
	c.HandleScroll(800, 800)
	c.Close()

	c.HandleScroll(1600, 800)
	assert.Equal(t, 1, c.ActiveIndex())

	_, moved := c.Navigate(feed.DirectionDown)
	assert.False(t, moved)

	// the in-flight settle timer must not flip state after Close
	time.Sleep(settleWindow + 20*time.Millisecond)
	assert.True(t, c.IsScrolling())
}

func TestFiveVideoScenario(t *testing.T) {
	c := feed.NewController(testVideos(5), settleWindow, nil, nil)
	c.HandleScroll(0, 800)

	_, moved := c.Navigate(feed.DirectionDown)
	assert.True(t, moved)
	_, moved = c.Navigate(feed.DirectionDown)
	assert.True(t, moved)
	assert.Equal(t, 2, c.ActiveIndex())

	time.Sleep(settleWindow + 20*time.Millisecond)
	video, ok := c.ActiveVideo()
	assert.True(t, ok)
	assert.Equal(t, "video-c", video.ID)
}
