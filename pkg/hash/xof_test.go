package hash

import (
	"testing"

	"tip5-hash/pkg/field"
)

// Test ExpandElements with known values from Python
func TestExpandElements(t *testing.T) {
	expected := []uint64{
		18288183191319843782, 10982628809269185130,
		8087779784030560132, 14132806264550225057,
	}
	got := ExpandElements([]byte("tip5-hash test"), len(expected))
	for i, want := range expected {
		if got[i].Value() != want {
			t.Errorf("ExpandElements[%d] = %v, want %d", i, got[i], want)
		}
	}
}

// Reading past one SHAKE block must continue the same stream.
func TestElementXOFMatchesExpand(t *testing.T) {
	seed := []byte("stream")
	want := ExpandElements(seed, 100)
	x := NewElementXOF(seed)
	for i := range want {
		if got := x.Next(); got != want[i] {
			t.Fatalf("Next() #%d = %v, want %v", i, got, want[i])
		}
	}
}

func TestElementXOFReset(t *testing.T) {
	x := NewElementXOF([]byte("first"))
	for i := 0; i < 30; i++ {
		x.Next()
	}
	x.Reset([]byte("second"))

	want := ExpandElements([]byte("second"), 30)
	for i := range want {
		if got := x.Next(); got != want[i] {
			t.Fatalf("after Reset, Next() #%d = %v, want %v", i, got, want[i])
		}
	}
}

func TestElementXOFCanonical(t *testing.T) {
	for i, e := range ExpandElements(nil, 500) {
		if e.Value() >= field.P {
			t.Errorf("element %d = %d is not canonical", i, e.Value())
		}
		if e.Raw() >= field.P {
			t.Errorf("element %d has raw word %d >= P", i, e.Raw())
		}
	}
	if ExpandElements([]byte("a"), 1)[0] == ExpandElements([]byte("b"), 1)[0] {
		t.Error("different seeds produced the same first element")
	}
}

func BenchmarkElementXOF(b *testing.B) {
	x := NewElementXOF([]byte("bench"))
	var e field.Element
	for i := 0; i < b.N; i++ {
		e = x.Next()
	}
	_ = e
}
