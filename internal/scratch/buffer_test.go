package scratch

import "testing"

func TestNewNegativeLength(t *testing.T) {
	if b := New[int](-3); b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", b.Len())
	}
}

func TestResizeReusesCapacity(t *testing.T) {
	b := New[float64](8)
	b.Resize(4)
	if b.Len() != 4 || b.Cap() != 8 {
		t.Fatalf("Len/Cap = %d/%d, want 4/8", b.Len(), b.Cap())
	}

	b.Resize(16)
	if b.Len() != 16 {
		t.Fatalf("Len() = %d, want 16", b.Len())
	}
}

func TestSplit(t *testing.T) {
	b := New[float64](6)
	for i := range b.Slice() {
		b.Slice()[i] = float64(i)
	}

	parts := b.Split(3, 2)
	if len(parts) != 3 {
		t.Fatalf("len(parts) = %d, want 3", len(parts))
	}
	if parts[1][0] != 2 || parts[2][1] != 5 {
		t.Fatalf("unexpected parts: %v", parts)
	}

	// Appending to one part must not overwrite the next.
	parts[0] = append(parts[0], 99)
	if parts[1][0] != 2 {
		t.Fatal("Split parts overlap on append")
	}
}
