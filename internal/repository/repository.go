// internal/repository/repository.go
package repository

// The repositories in this package keep every collection in process memory,
// in a map keyed by id. Ids are assigned from a monotonic counter seeded at
// max(existing)+1, so a freshly created entity always gets max+1 (or 1 when
// the collection is empty) and ids are never reused after a deletion.
//
// All methods copy entities on the way in and out so callers can never
// mutate the backing store through a shared pointer.

type idSequence struct {
	next int64
}

func newIDSequence() *idSequence {
	return &idSequence{next: 1}
}

// Reserve returns the next id and advances the sequence.
func (s *idSequence) Reserve() int64 {
	id := s.next
	s.next++
	return id
}

// Observe bumps the sequence past an id that already exists, so seeded
// records with fixed ids never collide with later assignments.
func (s *idSequence) Observe(id int64) {
	if id >= s.next {
		s.next = id + 1
	}
}
