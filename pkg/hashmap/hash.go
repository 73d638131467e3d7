// Package hashmap provides the string-keyed hash table behind mapcell.
package hashmap

import "github.com/spaolacci/murmur3"

// hashKey hashes a key to an unsigned 32-bit value.
//
// Murmur3 gives uniform bucket distribution for short text keys. The
// exact function is not part of the table's contract; only determinism
// (the same key always hashes identically) is required.
func hashKey(key string) uint32 {
	return murmur3.Sum32([]byte(key))
}

// bucketIndex reduces a key's hash to a slot for the given capacity.
func bucketIndex(key string, capacity int) int {
	return int(hashKey(key) % uint32(capacity))
}
