package board

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Placement is a player and the square they stand on
type Placement struct {
	Player string `json:"player"`
	Square Square `json:"square"`
}

// Roster keeps player positions in the order players joined.
// It implements engine.State and never fails.
type Roster struct {
	positions *orderedmap.OrderedMap[string, Square]
}

// NewRoster creates an empty roster
func NewRoster() *Roster {
	return &Roster{
		positions: orderedmap.New[string, Square](),
	}
}

// Position returns the player's square
func (r *Roster) Position(player string) (Square, bool, error) {
	square, ok := r.positions.Get(player)
	return square, ok, nil
}

// Add registers the player on the given square
func (r *Roster) Add(player string, at Square) error {
	r.positions.Set(player, at)
	return nil
}

// Remove forgets the player
func (r *Roster) Remove(player string) error {
	r.positions.Delete(player)
	return nil
}

// PlayersAt lists the players standing on the given square, in joining order
func (r *Roster) PlayersAt(at Square) ([]string, error) {
	var players []string
	for pair := r.positions.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == at {
			players = append(players, pair.Key)
		}
	}
	return players, nil
}

// Players lists every player in joining order
func (r *Roster) Players() ([]string, error) {
	players := make([]string, 0, r.positions.Len())
	for pair := r.positions.Oldest(); pair != nil; pair = pair.Next() {
		players = append(players, pair.Key)
	}
	return players, nil
}

// SetPosition moves a registered player. Unknown players are ignored.
func (r *Roster) SetPosition(player string, at Square) error {
	if _, ok := r.positions.Get(player); ok {
		r.positions.Set(player, at)
	}
	return nil
}

// Placements returns every player with their square, in joining order
func (r *Roster) Placements() []Placement {
	placements := make([]Placement, 0, r.positions.Len())
	for pair := r.positions.Oldest(); pair != nil; pair = pair.Next() {
		placements = append(placements, Placement{Player: pair.Key, Square: pair.Value})
	}
	return placements
}

// Len returns the number of registered players
func (r *Roster) Len() int {
	return r.positions.Len()
}
