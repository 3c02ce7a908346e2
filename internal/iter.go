package internal

import (
	"iter"
	"slices"
)

// KeyedSeq2 iterates the entries of a map in the order of a key slice. Keys
// missing from the map are skipped.
func KeyedSeq2[K comparable, V any](keys []K, m map[K]V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range keys {
			val, ok := m[key]
			if !ok {
				continue
			}
			if !yield(key, val) {
				return // Stop if the consumer stops
			}
		}
	}
}

// SelectSeq2 iterates the entries of a sequence whose key is in keys. An
// empty key list selects every entry.
func SelectSeq2[K comparable, V any](seq iter.Seq2[K, V], keys ...K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key, val := range seq {
			if len(keys) != 0 && !slices.Contains(keys, key) {
				continue
			}
			if !yield(key, val) {
				return // Stop if the consumer stops
			}
		}
	}
}
