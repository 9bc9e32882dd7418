package collections

// Merge returns a new map containing the entries of all given maps.
// When the same key appears in several maps, the last one wins.
func Merge[K comparable, V any](ms ...map[K]V) map[K]V {
	size := 0
	for _, m := range ms {
		size += len(m)
	}
	res := make(map[K]V, size)
	for _, m := range ms {
		for k, v := range m {
			res[k] = v
		}
	}
	return res
}

// MapValues returns a map with the same keys as m and values obtained by
// applying the given transform function to each original value.
func MapValues[K comparable, V, R any](m map[K]V, transform func(it V) R) map[K]R {
	res := make(map[K]R, len(m))
	for k, v := range m {
		res[k] = transform(v)
	}
	return res
}
