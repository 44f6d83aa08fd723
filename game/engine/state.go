package engine

// State associates players with their positions on the track.
//
// Missing players are reported through the found flag or empty slices, never
// as errors. Any error returned aborts the command in flight and is surfaced
// to the caller wrapped in a *StateError.
type State[Pl comparable, P any] interface {
	// Position returns the player's square and whether the player is registered
	Position(player Pl) (P, bool, error)
	// Add registers the player at the given square
	Add(player Pl, at P) error
	// Remove forgets the player; removing an unknown player is not an error
	Remove(player Pl) error
	// PlayersAt lists every player standing on the given square
	PlayersAt(at P) ([]Pl, error)
	// Players lists every registered player in roster order
	Players() ([]Pl, error)
	// SetPosition moves a registered player to the given square
	SetPosition(player Pl, at P) error
}
