package dice

import (
	"errors"
	"testing"
)

func TestRandom_Range(t *testing.T) {
	d := NewRandom(42)
	seen := make(map[int]bool)

	for i := 0; i < 1000; i++ {
		v := d.Roll()
		if v < 1 || v > Sides {
			t.Fatalf("Roll %d out of range: %d", i, v)
		}
		seen[v] = true
	}

	if len(seen) != Sides {
		t.Errorf("Expected every face to show up in 1000 rolls, saw %v", seen)
	}
}

func TestRandom_SeedIsReproducible(t *testing.T) {
	a := NewRandom(7)
	b := NewRandom(7)

	for i := 0; i < 50; i++ {
		if x, y := a.Roll(), b.Roll(); x != y {
			t.Fatalf("Roll %d differs: %d != %d", i, x, y)
		}
	}
}

func TestRandom_ZeroSeed(t *testing.T) {
	d := NewRandom(0)
	if d.Seed() == 0 {
		t.Error("Expected a non-zero seed to be drawn")
	}
}

func TestScript(t *testing.T) {
	s := NewScript(3, 4)

	if v := s.Roll(); v != 3 {
		t.Errorf("Expected 3, got %d", v)
	}
	if v := s.Roll(); v != 4 {
		t.Errorf("Expected 4, got %d", v)
	}
	if s.Remaining() != 0 {
		t.Errorf("Expected empty script, %d left", s.Remaining())
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrExhausted) {
			t.Errorf("Expected ErrExhausted panic, got %v", r)
		}
	}()
	s.Roll()
}

func TestCycle(t *testing.T) {
	c := NewCycle(1, 2, 3)
	expected := []int{1, 2, 3, 1, 2, 3, 1}

	for i, want := range expected {
		if got := c.Roll(); got != want {
			t.Errorf("Roll %d: expected %d, got %d", i, want, got)
		}
	}
}
