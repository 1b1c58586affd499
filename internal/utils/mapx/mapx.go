// File: mapx.go
// Title: Map Utility Functions
// Description: Implements generic map helpers used when reconciling locale
//              dictionaries: key extraction, cloning, and set difference
//              over key spaces.
// Author: janAlonola
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package mapx

// Keys returns a slice of all keys from the map.
// The order is unspecified; callers that need determinism must sort.
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Clone creates a shallow copy of the map
func Clone[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}

	clone := make(map[K]V, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// DifferenceKeys returns the keys of a that are not present in b.
// The order is unspecified; callers that need determinism must sort.
func DifferenceKeys[K comparable, V1, V2 any](a map[K]V1, b map[K]V2) []K {
	if a == nil {
		return nil
	}

	var diff []K
	for k := range a {
		if _, exists := b[k]; !exists {
			diff = append(diff, k)
		}
	}
	return diff
}

// IntersectCount returns the number of keys present in both maps
func IntersectCount[K comparable, V1, V2 any](a map[K]V1, b map[K]V2) int {
	// Iterate over the smaller map
	if len(b) < len(a) {
		return IntersectCount(b, a)
	}

	count := 0
	for k := range a {
		if _, exists := b[k]; exists {
			count++
		}
	}
	return count
}
