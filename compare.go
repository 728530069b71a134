package tagsum

// compareOptional is the shared three-way order over optional values:
// a present value always ranks above an absent one, two present values
// are ordered by cmp, two absent values are equal.
//
// Both tag ordering (a key against "no key") and image ordering (an image
// without a dominant tag) follow this same rule, so it lives in one place.
func compareOptional[T any](a, b *T, cmp func(T, T) int) int {
	switch {
	case a == nil && b == nil:
		return 0

	case a == nil:
		return -1

	case b == nil:
		return 1

	default:
		return cmp(*a, *b)
	}
}
