package board

import (
	"reflect"
	"testing"
)

func TestRoster(t *testing.T) {
	b := Classic()
	roster := NewRoster()

	for _, name := range []string{"Pippo", "Pluto", "Paperino"} {
		if err := roster.Add(name, b.Start()); err != nil {
			t.Fatalf("Failed to add %s: %v", name, err)
		}
	}

	t.Run("joining order", func(t *testing.T) {
		players, _ := roster.Players()
		expected := []string{"Pippo", "Pluto", "Paperino"}
		if !reflect.DeepEqual(players, expected) {
			t.Errorf("Expected %v, got %v", expected, players)
		}
	})

	t.Run("set position", func(t *testing.T) {
		if err := roster.SetPosition("Pluto", b.At(10)); err != nil {
			t.Fatalf("SetPosition failed: %v", err)
		}
		at, _ := roster.PlayersAt(b.At(10))
		if !reflect.DeepEqual(at, []string{"Pluto"}) {
			t.Errorf("Expected only Pluto on 10, got %v", at)
		}
		start, _ := roster.PlayersAt(b.Start())
		if !reflect.DeepEqual(start, []string{"Pippo", "Paperino"}) {
			t.Errorf("Expected Pippo and Paperino on start, got %v", start)
		}
	})

	t.Run("unknown player is ignored", func(t *testing.T) {
		if err := roster.SetPosition("Topolino", b.At(3)); err != nil {
			t.Fatalf("SetPosition failed: %v", err)
		}
		if _, found, _ := roster.Position("Topolino"); found {
			t.Error("Expected Topolino to stay unregistered")
		}
	})

	t.Run("remove", func(t *testing.T) {
		if err := roster.Remove("Pippo"); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if roster.Len() != 2 {
			t.Errorf("Expected 2 players, got %d", roster.Len())
		}
		placements := roster.Placements()
		if placements[0].Player != "Pluto" || placements[0].Square != b.At(10) {
			t.Errorf("Unexpected first placement %+v", placements[0])
		}
	})
}
