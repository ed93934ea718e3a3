package fsa

// Hashable A key of HashMap. Equal keys must have equal hashes.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

const maxLoad = 0.75

// HashMap A chained hash table keyed by Hashable. The subset construction keys it by state sets, so two sets
// with the same members find the same entry however they were built. It is not safe for concurrent use.
type HashMap[T any] struct {
	buckets []*entry[T]
	size    int
}

type entry[T any] struct {
	key   Hashable
	value T
	next  *entry[T]
}

type optionsHashMap struct {
	capacity int
}

type OptionsHashMap func(*optionsHashMap)

// WithCapacity Sets the initial number of buckets, rounded up to a power of two.
func WithCapacity(capacity int) OptionsHashMap {
	return func(o *optionsHashMap) {
		o.capacity = capacity
	}
}

func NewHashMap[T any](options ...OptionsHashMap) *HashMap[T] {
	opt := &optionsHashMap{capacity: 1}
	for _, fn := range options {
		fn(opt)
	}

	n := 1
	for n < opt.capacity {
		n <<= 1
	}
	return &HashMap[T]{buckets: make([]*entry[T], n)}
}

func (m *HashMap[T]) bucket(key Hashable) int {
	return int(key.Hash() & uint64(len(m.buckets)-1))
}

// Set Inserts or replaces the value stored under key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	i := m.bucket(key)
	for e := m.buckets[i]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	m.buckets[i] = &entry[T]{key: key, value: value, next: m.buckets[i]}
	m.size++
	if float64(m.size) > maxLoad*float64(len(m.buckets)) {
		m.grow()
	}
}

// Get Returns the value stored under key.
func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	for e := m.buckets[m.bucket(key)]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	var zero T
	return zero, false
}

// Size Returns the number of entries.
func (m *HashMap[T]) Size() int {
	return m.size
}

// grow doubles the bucket count and relinks every entry.
func (m *HashMap[T]) grow() {
	old := m.buckets
	m.buckets = make([]*entry[T], len(old)<<1)
	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			i := m.bucket(e.key)
			e.next = m.buckets[i]
			m.buckets[i] = e
			e = next
		}
	}
}
