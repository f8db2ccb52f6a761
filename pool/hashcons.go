package pool

// Hashable is the self-referential constraint satisfied by hash-consed
// payloads: Zone, State and their kin each implement Hash and Equal
// against their own type (spec 4.3/4.4).
type Hashable[T any] interface {
	Hash() uint64
	Equal(T) bool
}

const initialTableSize = 16
const loadFactorThreshold = 0.75

type slotState uint8

const (
	slotEmpty slotState = iota
	slotUsed
	slotTombstone
)

type slot[T Hashable[T]] struct {
	state slotState
	hash  uint64
	value T
}

// HashCons is an open-addressed, linear-probed table that interns values
// of T: FindOrInsert returns the canonical representative for any value
// structurally equal (per Equal) to one already present, inserting it
// otherwise. Removal uses tombstones so probe chains stay intact, and the
// table grows once the used+tombstone count crosses a 0.75 load factor
// (spec 4.4).
type HashCons[T Hashable[T]] struct {
	slots []slot[T]
	used  int // live entries
	dirty int // used + tombstones, drives the growth threshold
}

// NewHashCons returns an empty table with an initial capacity of 16.
func NewHashCons[T Hashable[T]]() *HashCons[T] {
	return &HashCons[T]{slots: make([]slot[T], initialTableSize)}
}

// Len reports the number of live (non-removed) entries.
func (h *HashCons[T]) Len() int { return h.used }

func (h *HashCons[T]) index(hash uint64) int { return int(hash % uint64(len(h.slots))) }

// FindOrInsert returns the canonical value equal to v, inserting v if no
// such value is present. inserted reports whether v was newly inserted.
func (h *HashCons[T]) FindOrInsert(v T) (canonical T, inserted bool) {
	hash := v.Hash()
	firstTombstone := -1
	n := len(h.slots)
	i := h.index(hash)
	for probed := 0; probed < n; probed++ {
		s := &h.slots[i]
		switch s.state {
		case slotEmpty:
			at := i
			if firstTombstone >= 0 {
				at = firstTombstone
			} else {
				h.dirty++
			}
			h.slots[at] = slot[T]{state: slotUsed, hash: hash, value: v}
			h.used++
			h.maybeGrow()
			return v, true
		case slotTombstone:
			if firstTombstone < 0 {
				firstTombstone = i
			}
		case slotUsed:
			if s.hash == hash && s.value.Equal(v) {
				return s.value, false
			}
		}
		i = (i + 1) % n
	}
	// Table full of used/tombstone slots with no empty found (shouldn't
	// happen given the growth threshold, but fall back to a reinsert).
	h.growTo(n * 2)
	return h.FindOrInsert(v)
}

// Remove deletes the entry equal to v, if present, replacing its slot
// with a tombstone. It reports whether an entry was removed.
func (h *HashCons[T]) Remove(v T) bool {
	hash := v.Hash()
	n := len(h.slots)
	i := h.index(hash)
	for probed := 0; probed < n; probed++ {
		s := &h.slots[i]
		switch s.state {
		case slotEmpty:
			return false
		case slotUsed:
			if s.hash == hash && s.value.Equal(v) {
				var zero T
				s.state = slotTombstone
				s.value = zero
				h.used--
				return true
			}
		}
		i = (i + 1) % n
	}
	return false
}

func (h *HashCons[T]) maybeGrow() {
	if float64(h.dirty)/float64(len(h.slots)) >= loadFactorThreshold {
		h.growTo(len(h.slots) * 2)
	}
}

func (h *HashCons[T]) growTo(newSize int) {
	old := h.slots
	h.slots = make([]slot[T], newSize)
	h.used = 0
	h.dirty = 0
	for _, s := range old {
		if s.state == slotUsed {
			h.insertFresh(s.hash, s.value)
		}
	}
}

// insertFresh inserts into a table known to have no colliding entry
// (used only while rehashing, where every surviving entry is distinct).
func (h *HashCons[T]) insertFresh(hash uint64, v T) {
	n := len(h.slots)
	i := int(hash % uint64(n))
	for {
		if h.slots[i].state == slotEmpty {
			h.slots[i] = slot[T]{state: slotUsed, hash: hash, value: v}
			h.used++
			h.dirty++
			return
		}
		i = (i + 1) % n
	}
}
