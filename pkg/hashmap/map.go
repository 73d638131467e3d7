// Package hashmap provides the string-keyed hash table behind mapcell.
package hashmap

// entry is one key/value cell in a bucket chain.
type entry[V any] struct {
	next  *entry[V]
	key   string
	value V
}

// Map is a string-keyed hash table with separate chaining.
//
// Capacity starts at 1 and doubles whenever the entry count would reach
// it, so the load factor never reaches 1.0. Capacity never shrinks.
type Map[V any] struct {
	buckets []*entry[V]
	size    int

	// version increments on every insert or remove. Iterators capture it
	// to detect mutation mid-walk.
	version uint64
}

// New creates a new, empty map with capacity for one entry.
func New[V any]() *Map[V] {
	return &Map[V]{
		buckets: make([]*entry[V], 1),
	}
}

// Size returns the number of entries in the map.
func (m *Map[V]) Size() int {
	return m.size
}

// Capacity returns the current number of buckets.
func (m *Map[V]) Capacity() int {
	return len(m.buckets)
}

// lookup returns the cell holding key, or nil.
func (m *Map[V]) lookup(key string) *entry[V] {
	b := bucketIndex(key, len(m.buckets))
	for e := m.buckets[b]; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// Contains reports whether the map holds key. Keys are case-sensitive.
func (m *Map[V]) Contains(key string) bool {
	return m.lookup(key) != nil
}

// Get returns the value stored for key.
//
// The second return value is false when the key is absent; the table
// never stores partial entries, so a true result always carries the
// exact value last passed to Set.
func (m *Map[V]) Get(key string) (V, bool) {
	if e := m.lookup(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Set stores value under key.
//
// If the key already exists its value is replaced in place and the map
// is otherwise untouched. New keys are inserted at the head of their
// bucket's chain after any required growth, so the insertion always
// lands in the final bucket array.
func (m *Map[V]) Set(key string, value V) {
	if e := m.lookup(key); e != nil {
		e.value = value
		return
	}

	// Grow first; the target bucket must be computed against the new
	// capacity.
	m.extendIfNecessary()

	b := bucketIndex(key, len(m.buckets))
	m.buckets[b] = &entry[V]{
		next:  m.buckets[b],
		key:   key,
		value: value,
	}
	m.size++
	m.version++
}

// Remove unlinks key from the map and returns its value.
//
// The second return value is false when the key was absent, in which
// case the map is unchanged.
func (m *Map[V]) Remove(key string) (V, bool) {
	b := bucketIndex(key, len(m.buckets))

	// Walk with a pointer-to-link so unlinking works uniformly at the
	// chain head and mid-chain.
	for p := &m.buckets[b]; *p != nil; p = &(*p).next {
		if (*p).key == key {
			e := *p
			*p = e.next
			m.size--
			m.version++
			return e.value, true
		}
	}

	var zero V
	return zero, false
}

// extendIfNecessary doubles the bucket array and rehashes every entry
// when the next insertion would bring the load factor to 1.0.
//
// The rehash is complete before control returns, never incremental, so
// an insertion is never split across old and new bucket arrays. Doubling
// keeps extension amortized O(1) per insertion.
func (m *Map[V]) extendIfNecessary() {
	if m.size < len(m.buckets) {
		return
	}

	old := m.buckets
	m.buckets = make([]*entry[V], 2*len(old))

	for _, e := range old {
		for e != nil {
			next := e.next

			// Relink the existing cell into its new bucket.
			b := bucketIndex(e.key, len(m.buckets))
			e.next = m.buckets[b]
			m.buckets[b] = e

			e = next
		}
	}
}
