package common

import "golang.org/x/exp/slices"

// MapKeys returns the keys of a map in sorted order.
func MapKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)
	return keys
}
