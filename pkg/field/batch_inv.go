package field

// BatchInversion replaces every element of xs with its inverse, in place.
// Uses Montgomery's trick: n inversions with 1 inversion + 3(n-1) multiplications.
// It panics if any element is zero.
func BatchInversion(xs []Element) {
	n := len(xs)
	if n == 0 {
		return
	}

	// Compute prefix products: prods[i] = xs[0] * xs[1] * ... * xs[i]
	prods := make([]Element, n)
	prods[0] = xs[0]
	for i := 1; i < n; i++ {
		prods[i] = prods[i-1].Mul(xs[i])
	}

	if prods[n-1].IsZero() {
		panic("field: batch inversion of zero")
	}

	// Invert the final product
	inv := prods[n-1].Inverse()

	// Work backwards to compute individual inverses
	for i := n - 1; i > 0; i-- {
		old := xs[i]
		// xs[i]^(-1) = inv * prods[i-1]
		xs[i] = inv.Mul(prods[i-1])
		// inv becomes prods[i-1]^(-1)
		inv = inv.Mul(old)
	}
	xs[0] = inv
}
