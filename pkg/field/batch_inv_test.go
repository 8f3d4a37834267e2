package field

import "testing"

func TestBatchInversion(t *testing.T) {
	xs := []Element{New(1), New(2), New(3), New(1000), New(123456)}
	expected := make([]Element, len(xs))
	for i, x := range xs {
		expected[i] = x.Inverse()
	}

	BatchInversion(xs)

	for i, want := range expected {
		if xs[i] != want {
			t.Errorf("BatchInversion[%d] = %v, want %v", i, xs[i], want)
		}
	}
}

// Test BatchInversion property: each result is actually the inverse
func TestBatchInversionProperty(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 16, 35, 64} {
		vs := sampleValues(n)
		original := make([]Element, n)
		xs := make([]Element, n)
		for i, v := range vs {
			if v == 0 {
				v = 1
			}
			original[i] = New(v)
			xs[i] = original[i]
		}

		BatchInversion(xs)

		for i, inv := range xs {
			if product := original[i].Mul(inv); !product.IsOne() {
				t.Errorf("n=%d: %v * %v = %v, want 1", n, original[i], inv, product)
			}
		}
	}
}

func TestBatchInversionEmpty(t *testing.T) {
	BatchInversion(nil) // Should not panic
	BatchInversion([]Element{})
}

func TestBatchInversionZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("BatchInversion with a zero element did not panic")
		}
	}()
	BatchInversion([]Element{New(2), Zero(), New(5)})
}
