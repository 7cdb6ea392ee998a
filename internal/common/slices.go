package common

// UnknownStr is the name reported for out-of-range enum values.
const UnknownStr = "unknown"

// Broadcast3 repeats v into all three components.
func Broadcast3[E any](v E) [3]E {
	return [3]E{v, v, v}
}

// NonNil returns s, or an empty non-nil slice when s is nil.
// Target documents serialize lists as [] rather than null.
func NonNil[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}

	return s
}
