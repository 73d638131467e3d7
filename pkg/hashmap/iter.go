// Package hashmap provides the string-keyed hash table behind mapcell.
package hashmap

// First returns the first key in iteration order: the chain head of the
// lowest-indexed non-empty bucket. The second return value is false when
// the map is empty.
//
// The order is arbitrary but internally consistent; walking First/Next
// to the end visits every key exactly once provided the map is not
// mutated during the walk.
func (m *Map[V]) First() (string, bool) {
	for _, e := range m.buckets {
		if e != nil {
			return e.key, true
		}
	}
	return "", false
}

// Next returns the key that follows key in iteration order: the next
// cell of the same chain, or the head of the next non-empty bucket.
//
// ok is false when key was the last in the sequence. key must be live in
// this map (normally obtained from First or a previous Next); otherwise
// Next returns ErrInvalidCursor.
func (m *Map[V]) Next(key string) (next string, ok bool, err error) {
	b := bucketIndex(key, len(m.buckets))

	var cur *entry[V]
	for e := m.buckets[b]; e != nil; e = e.next {
		if e.key == key {
			cur = e
			break
		}
	}
	if cur == nil {
		return "", false, ErrInvalidCursor
	}

	if cur.next != nil {
		return cur.next.key, true, nil
	}
	for i := b + 1; i < len(m.buckets); i++ {
		if m.buckets[i] != nil {
			return m.buckets[i].key, true, nil
		}
	}
	return "", false, nil
}

// Iterator walks a map in bucket order holding an explicit
// (bucket, cell) cursor.
//
// The iterator is invalidated by any insert or remove on the map;
// its next advance then fails and Err reports ErrStaleIterator.
// Overwriting an existing key's value does not invalidate iteration.
type Iterator[V any] struct {
	m       *Map[V]
	version uint64
	bucket  int
	cell    *entry[V]
	err     error
}

// Iter returns an iterator positioned before the first entry.
func (m *Map[V]) Iter() *Iterator[V] {
	return &Iterator[V]{
		m:       m,
		version: m.version,
		bucket:  -1,
	}
}

// Next advances the iterator to the next entry. It returns false at the
// end of the map or on error; check Err after the loop.
func (it *Iterator[V]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.version != it.m.version {
		it.err = ErrStaleIterator
		it.cell = nil
		return false
	}

	if it.cell != nil && it.cell.next != nil {
		it.cell = it.cell.next
		return true
	}

	for b := it.bucket + 1; b < len(it.m.buckets); b++ {
		if it.m.buckets[b] != nil {
			it.bucket = b
			it.cell = it.m.buckets[b]
			return true
		}
	}

	it.cell = nil
	it.bucket = len(it.m.buckets)
	return false
}

// Key returns the key at the current position. Valid only after Next
// has returned true.
func (it *Iterator[V]) Key() string {
	if it.cell == nil {
		return ""
	}
	return it.cell.key
}

// Value returns the value at the current position. Valid only after
// Next has returned true.
func (it *Iterator[V]) Value() V {
	if it.cell == nil {
		var zero V
		return zero
	}
	return it.cell.value
}

// Err returns the error that stopped iteration, if any.
func (it *Iterator[V]) Err() error {
	return it.err
}

// Range calls fn for every entry until fn returns false. It returns
// ErrStaleIterator if fn mutates the map.
func (m *Map[V]) Range(fn func(key string, value V) bool) error {
	it := m.Iter()
	for it.Next() {
		if !fn(it.Key(), it.Value()) {
			return nil
		}
	}
	return it.Err()
}

// Keys returns all keys in iteration order.
func (m *Map[V]) Keys() []string {
	keys := make([]string, 0, m.size)
	_ = m.Range(func(key string, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
