package util

// Ptr returns a pointer to the given value
func Ptr[T any](v T) *T {
	return &v
}

// EmptyIfNil returns an empty, non-nil slice when s is nil so that it
// encodes as [] rather than null.
func EmptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
