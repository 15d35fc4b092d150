package idgen

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vibra-app/vibra/internal/domain/contract"
)

// UUIDGenerator implements contract.IUUIDGenerator.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUID generator.
func NewUUIDGenerator() contract.IUUIDGenerator {
	return &UUIDGenerator{}
}

// NewUUID generates a new UUID.
func (g *UUIDGenerator) NewUUID() string {
	return uuid.New().String()
}

var _ contract.IUUIDGenerator = (*UUIDGenerator)(nil)

// TimestampGenerator mints the platform's "<prefix>-<unix-ms>" entity IDs.
// Two calls in the same millisecond get strictly increasing values, so
// successive IDs are always distinct. The clock is injectable for tests.
type TimestampGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewTimestampGenerator creates a generator backed by the wall clock.
func NewTimestampGenerator() *TimestampGenerator {
	return &TimestampGenerator{now: time.Now}
}

// NewTimestampGeneratorWithClock creates a generator with a custom clock.
func NewTimestampGeneratorWithClock(now func() time.Time) *TimestampGenerator {
	return &TimestampGenerator{now: now}
}

// NewID returns "<prefix>-<unix-ms>".
func (g *TimestampGenerator) NewID(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return fmt.Sprintf("%s-%d", prefix, ms)
}

var _ contract.IIDGenerator = (*TimestampGenerator)(nil)
