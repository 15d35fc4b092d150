package contract

// IUUIDGenerator produces opaque unique identifiers (session IDs).
type IUUIDGenerator interface {
	NewUUID() string
}

// IIDGenerator produces the timestamp-prefixed entity identifiers the
// platform uses for records minted outside the seed set, e.g.
// "user-1719245871234".
type IIDGenerator interface {
	NewID(prefix string) string
}
