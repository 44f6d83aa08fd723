package engine

import "fmt"

// Move resolves a full move chain for a registered player.
//
// The two dice are summed once and the same distance is reused for every
// hop granted by a goose square. Each hop emits Moved (MovedAgain after the
// first), Bounced and ReturnedTo when the end square is overshot, and a
// Pranked event for every other player found on the landing square. Pranked
// players are sent to the square the mover occupied before the command began.
// The chain stops on a normal square, the end square (Won) or the bridge,
// which sends the mover to square 12 regardless of that square's type.
//
// State failures abort the chain and are returned as *StateError. Positions
// written by earlier hops are not rolled back.
func (g *Game[Pl, P, R, E]) Move(player Pl, first, second R) (E, error) {
	var none E

	initial, found, err := g.state.Position(player)
	if err != nil {
		return none, stateError(err)
	}
	if !found {
		return none, &PlayerError[Pl]{Player: player, Err: ErrPlayerNotFound}
	}

	events := g.newEvents()
	g.notify(events, Event[Pl, P, R]{Kind: EventRolled, Player: player, Dice: [2]R{first, second}})

	distance := first + second
	start := initial
	again := false

	for hop := 0; hop < g.maxHops; hop++ {
		step := start.Advance(distance)

		moved := EventMoved
		if again {
			moved = EventMovedAgain
		}
		g.notify(events, Event[Pl, P, R]{Kind: moved, Player: player, From: start, To: step.Touched})
		if step.Bounced {
			g.notify(events, Event[Pl, P, R]{Kind: EventBounced, Player: player})
			g.notify(events, Event[Pl, P, R]{Kind: EventReturnedTo, Player: player, To: step.To})
		}

		landing := step.To
		occupants, err := g.state.PlayersAt(landing)
		if err != nil {
			return none, stateError(err)
		}

		start = landing
		if err := g.state.SetPosition(player, landing); err != nil {
			return none, stateError(err)
		}

		for _, other := range occupants {
			if other == player {
				continue
			}
			g.notify(events, Event[Pl, P, R]{Kind: EventPranked, Player: other, From: landing, To: initial})
			if err := g.state.SetPosition(other, initial); err != nil {
				return none, stateError(err)
			}
		}

		switch landing.Type() {
		case BridgeSquare:
			target := g.track.At(BridgeTargetIndex)
			if err := g.state.SetPosition(player, target); err != nil {
				return none, stateError(err)
			}
			g.notify(events, Event[Pl, P, R]{Kind: EventJumpedToBridgeTarget, Player: player, To: target})
			return events, nil
		case GooseSquare:
			again = true
		case EndSquare:
			g.notify(events, Event[Pl, P, R]{Kind: EventWon, Player: player})
			return events, nil
		default:
			return events, nil
		}
	}

	return none, fmt.Errorf("%w: %v moved %d times with distance %v", ErrHopLimit, player, g.maxHops, distance)
}
