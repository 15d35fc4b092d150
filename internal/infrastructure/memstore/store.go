package memstore

import (
	"sync"

	"github.com/vibra-app/vibra/internal/domain/entity"
)

// Store holds the fixed dataset every screen is driven by. It is loaded
// once at process start and lives for the life of the process; nothing in
// it survives a restart. Slices keep insertion order (the feed order),
// maps index by ID for lookups. All access goes through the per-entity
// repositories in this package, which copy on the way out.
type Store struct {
	mu           sync.Mutex
	users        []entity.User
	usersByID    map[string]int
	videos       []entity.Video
	videosByID   map[string]int
	comments     []entity.Comment
	commentsByID map[string]int
	transactions []entity.Transaction
	reports      []entity.Report
	reportsByID  map[string]int
}

// NewStore builds a store from a dataset. The caller hands over ownership
// of the slices.
func NewStore(d Dataset) *Store {
	s := &Store{
		users:        d.Users,
		usersByID:    make(map[string]int, len(d.Users)),
		videos:       d.Videos,
		videosByID:   make(map[string]int, len(d.Videos)),
		comments:     d.Comments,
		commentsByID: make(map[string]int, len(d.Comments)),
		transactions: d.Transactions,
		reports:      d.Reports,
		reportsByID:  make(map[string]int, len(d.Reports)),
	}
	for i := range s.users {
		s.usersByID[s.users[i].ID] = i
	}
	for i := range s.videos {
		s.videosByID[s.videos[i].ID] = i
	}
	for i := range s.comments {
		s.commentsByID[s.comments[i].ID] = i
	}
	for i := range s.reports {
		s.reportsByID[s.reports[i].ID] = i
	}
	return s
}

// Dataset is the raw seed handed to NewStore.
type Dataset struct {
	Users        []entity.User
	Videos       []entity.Video
	Comments     []entity.Comment
	Transactions []entity.Transaction
	Reports      []entity.Report
}
