package common

import "strconv"

// Index returns the path of the i-th element of a list key, e.g. "primitives[3]".
func Index(key string, i int) string {
	return key + "[" + strconv.Itoa(i) + "]"
}

// Join appends a child key to a parent path. An empty parent yields the key alone.
func Join(parent, key string) string {
	if parent == "" {
		return key
	}

	return parent + "." + key
}
