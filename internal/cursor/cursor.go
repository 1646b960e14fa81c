// Package cursor moves bounded indexes over closed enumerations.
//
// Next and Prev wrap around at the ends. Inc and Dec saturate. Every function
// takes the cardinality n of the enumeration and returns 0 when n <= 0.
package cursor

// Next returns the index after i, wrapping to 0 past the last value.
func Next[T ~int](i T, n int) T {
	if n <= 0 {
		return 0
	}
	return T((int(normalize(i, n)) + 1) % n)
}

// Prev returns the index before i, wrapping to n-1 below 0.
func Prev[T ~int](i T, n int) T {
	if n <= 0 {
		return 0
	}
	return T((int(normalize(i, n)) + n - 1) % n)
}

// Inc returns i+1, stopping at n-1.
func Inc[T ~int](i T, n int) T {
	if n <= 0 {
		return 0
	}
	return Clamp(i+1, n)
}

// Dec returns i-1, stopping at 0.
func Dec[T ~int](i T, n int) T {
	if n <= 0 {
		return 0
	}
	return Clamp(i-1, n)
}

// Clamp limits i to [0, n-1].
func Clamp[T ~int](i T, n int) T {
	if n <= 0 || i < 0 {
		return 0
	}
	if int(i) >= n {
		return T(n - 1)
	}
	return i
}

func normalize[T ~int](i T, n int) T {
	v := int(i) % n
	if v < 0 {
		v += n
	}
	return T(v)
}
