package board

import (
	"encoding/json"
	"testing"
)

func TestSquare_Advance(t *testing.T) {
	b := Classic()

	tests := []struct {
		name     string
		from     uint32
		distance int
		to       uint32
		touched  uint32
		bounced  bool
	}{
		{"normal", 0, 7, 7, 7, false},
		{"exact end", 60, 3, 63, 63, false},
		{"bounce", 60, 5, 62, 63, true},
		{"bounce one past", 62, 2, 63, 63, true},
		{"large bounce", 62, 12, 53, 63, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step := b.At(tt.from).Advance(tt.distance)
			if step.To != b.At(tt.to) {
				t.Errorf("Expected to rest on %d, got %d", tt.to, step.To.Index())
			}
			if step.Touched != b.At(tt.touched) {
				t.Errorf("Expected to touch %d, got %d", tt.touched, step.Touched.Index())
			}
			if step.Bounced != tt.bounced {
				t.Errorf("Expected bounced=%v, got %v", tt.bounced, step.Bounced)
			}
		})
	}
}

func TestSquare_AdvanceClampsBelowStart(t *testing.T) {
	b := &Board{Name: "tiny", End: 13, Bridge: 6}

	step := b.At(12).Advance(20)
	if !step.Bounced {
		t.Fatal("Expected a bounce")
	}
	if step.To != b.Start() {
		t.Errorf("Expected clamp to start, got %d", step.To.Index())
	}
}

func TestSquare_Label(t *testing.T) {
	b := Classic()

	tests := []struct {
		index uint32
		label string
	}{
		{0, "Start"},
		{4, "4"},
		{5, "5, The Goose"},
		{6, "6, The Bridge"},
		{63, "63"},
	}

	for _, tt := range tests {
		if got := b.At(tt.index).Label(); got != tt.label {
			t.Errorf("Square %d: expected label %q, got %q", tt.index, tt.label, got)
		}
	}
}

func TestSquare_Equality(t *testing.T) {
	b := Classic()
	other := Classic()

	if b.At(5) != b.At(5) {
		t.Error("Expected squares with the same board and index to be equal")
	}
	if b.At(5) == other.At(5) {
		t.Error("Expected squares on different boards to differ")
	}
}

func TestSquare_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Placement{Player: "Pippo", Square: Classic().At(12)})
	if err != nil {
		t.Fatalf("Failed to marshal placement: %v", err)
	}
	if string(data) != `{"player":"Pippo","square":12}` {
		t.Errorf("Unexpected JSON %s", data)
	}
}
