package engine

import "fmt"

// Option configures a Game
type Option func(*options)

type options struct {
	maxHops int
}

// WithMaxHops overrides the longest move chain the game accepts
func WithMaxHops(n int) Option {
	return func(o *options) {
		o.maxHops = n
	}
}

// Game dispatches commands against a player state.
//
// A Game does no locking. Callers sharing one across goroutines must
// serialize every call, since a goose chain writes the mover's position
// before the next hop looks for occupants.
type Game[Pl comparable, P Position[P, R], R Roll, E Events[Pl, P, R]] struct {
	track     Track[P]
	state     State[Pl, P]
	dice      Dice[R]
	newEvents func() E
	maxHops   int
}

// New creates a game over the given track, player state and dice source.
// newEvents is called once per command to obtain a fresh event sink.
func New[Pl comparable, P Position[P, R], R Roll, E Events[Pl, P, R]](
	track Track[P],
	state State[Pl, P],
	dice Dice[R],
	newEvents func() E,
	opts ...Option,
) *Game[Pl, P, R, E] {
	o := options{maxHops: DefaultMaxHops}
	if limiter, ok := track.(HopLimiter); ok && limiter.MaxHops() > 0 {
		o.maxHops = limiter.MaxHops()
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Game[Pl, P, R, E]{
		track:     track,
		state:     state,
		dice:      dice,
		newEvents: newEvents,
		maxHops:   o.maxHops,
	}
}

// MaxHops returns the longest move chain the game accepts
func (g *Game[Pl, P, R, E]) MaxHops() int {
	return g.maxHops
}

// Execute runs a single command and returns the events it produced
func (g *Game[Pl, P, R, E]) Execute(cmd Command[Pl, R]) (E, error) {
	switch cmd.Kind {
	case CommandAdd:
		return g.AddPlayer(cmd.Player)
	case CommandRemove:
		return g.RemovePlayer(cmd.Player)
	case CommandMove:
		return g.Move(cmd.Player, cmd.Dice[0], cmd.Dice[1])
	case CommandRollAndMove:
		return g.RollAndMove(cmd.Player)
	default:
		var none E
		return none, fmt.Errorf("%w: %d", ErrUnknownCommand, int(cmd.Kind))
	}
}

// AddPlayer registers a player on the start square and lists the roster
func (g *Game[Pl, P, R, E]) AddPlayer(player Pl) (E, error) {
	var none E

	_, found, err := g.state.Position(player)
	if err != nil {
		return none, stateError(err)
	}
	if found {
		return none, &PlayerError[Pl]{Player: player, Err: ErrDuplicatePlayer}
	}

	if err := g.state.Add(player, g.track.At(StartIndex)); err != nil {
		return none, stateError(err)
	}

	return g.listPlayers()
}

// RemovePlayer unregisters a player and lists the roster. Unknown players are ignored.
func (g *Game[Pl, P, R, E]) RemovePlayer(player Pl) (E, error) {
	if err := g.state.Remove(player); err != nil {
		var none E
		return none, stateError(err)
	}

	return g.listPlayers()
}

// RollAndMove draws both dice from the dice source, in order, and moves the player
func (g *Game[Pl, P, R, E]) RollAndMove(player Pl) (E, error) {
	first := g.dice.Roll()
	second := g.dice.Roll()

	return g.Move(player, first, second)
}

func (g *Game[Pl, P, R, E]) listPlayers() (E, error) {
	players, err := g.state.Players()
	if err != nil {
		var none E
		return none, stateError(err)
	}

	events := g.newEvents()
	g.notify(events, Event[Pl, P, R]{Kind: EventPlayersListed, Players: players})
	return events, nil
}

// notify appends to the sink. Sink failures never abort a command.
func (g *Game[Pl, P, R, E]) notify(events E, event Event[Pl, P, R]) {
	_ = events.Notify(event)
}
