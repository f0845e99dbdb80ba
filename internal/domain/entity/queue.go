package entity

import "math/rand"

// DefaultQueueSize is the number of birds drawn per batch
const DefaultQueueSize = 5

// BirdQueue dispenses bird kinds in random batches.
// It is never empty: a new batch is drawn as soon as the last one is taken.
type BirdQueue struct {
	rng    *rand.Rand
	kinds  []BirdKind
	cursor int
}

// NewBirdQueue creates a queue with batches of size kinds
func NewBirdQueue(rng *rand.Rand, size int) *BirdQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	q := &BirdQueue{
		rng:   rng,
		kinds: make([]BirdKind, size),
	}
	q.refill()
	return q
}

func (q *BirdQueue) refill() {
	for i := range q.kinds {
		q.kinds[i] = AllKinds[q.rng.Intn(len(AllKinds))]
	}
	q.cursor = 0
}

// PeekNext returns the kind TakeNext will return, without advancing
func (q *BirdQueue) PeekNext() BirdKind {
	return q.kinds[q.cursor]
}

// TakeNext returns the next kind and advances the cursor
func (q *BirdQueue) TakeNext() BirdKind {
	k := q.kinds[q.cursor]
	q.cursor++
	if q.cursor >= len(q.kinds) {
		q.refill()
	}
	return k
}

// Upcoming returns the kinds left in the current batch, next first
func (q *BirdQueue) Upcoming() []BirdKind {
	out := make([]BirdKind, len(q.kinds)-q.cursor)
	copy(out, q.kinds[q.cursor:])
	return out
}

// Cursor returns the index of the next kind within the batch
func (q *BirdQueue) Cursor() int {
	return q.cursor
}

// Size returns the batch size
func (q *BirdQueue) Size() int {
	return len(q.kinds)
}
