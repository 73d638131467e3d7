// Package hashmap provides the string-keyed hash table behind mapcell.
//
// The table resolves collisions by separate chaining and grows by
// amortized doubling:
//
//   - Buckets: singly linked chains, new entries inserted at the head
//   - Growth: capacity doubles (full rehash) whenever the entry count
//     would reach the bucket count, so the load factor stays below 1.0
//   - Iteration: bucket order, chain order within a bucket, via either
//     the checked First/Next key protocol or a cursor Iterator
//
// Values are opaque to the table; it stores and returns them but never
// manages their lifetime. Keys are case-sensitive byte strings.
//
// Usage:
//
//	m := hashmap.New[string]()
//	m.Set("key", "value")
//	val, ok := m.Get("key")
//
// Thread Safety:
//
// None. Callers that need concurrent access must serialize
// externally. Mutating the map
// invalidates in-progress iterators (see Iterator).
package hashmap
