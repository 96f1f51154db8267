package position

import "golang.org/x/exp/constraints"

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
