package invoicer

import "github.com/oklog/ulid/v2"

// NewID returns a unique identifier for a new record. ULIDs combine a
// millisecond timestamp with randomness, so ids are collision-free in
// practice and records sort by creation time when sorted by id.
// Uniqueness across collections is the caller's concern only in that
// every new record must get a fresh id.
func NewID() string {
	return ulid.Make().String()
}
