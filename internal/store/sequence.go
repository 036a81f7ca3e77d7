package store

import "sync/atomic"

// sequence hands out strictly increasing ids starting at 1. Ids are never
// given back, deleting a book does not rewind it.
type sequence struct {
	last atomic.Int64
}

func (s *sequence) Next() int {
	return int(s.last.Add(1))
}
