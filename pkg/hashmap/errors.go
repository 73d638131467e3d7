// Package hashmap provides the string-keyed hash table behind mapcell.
package hashmap

import "errors"

var (
	// ErrInvalidCursor reports a Next call with a key that is not live in
	// the map. Iteration keys must come from First or Next on the same
	// map; stale keys from before a Remove are rejected, not undefined.
	ErrInvalidCursor = errors.New("hashmap: iteration key not present in map")

	// ErrStaleIterator reports use of an Iterator after the map was
	// restructured by an insert or remove.
	ErrStaleIterator = errors.New("hashmap: map mutated during iteration")
)
