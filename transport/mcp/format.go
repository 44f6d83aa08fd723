package mcp

import (
	"fmt"
	"strings"

	"github.com/wricardo/mcp-training/goosegame/game/service"
)

// Rules is the text returned by the game_rules tool
const Rules = `GAME OF THE GOOSE - RULES

Players race from Start (square 0) to the end square (63 on the classic board).

MOVING:
- A move uses two dice; the player advances by their sum.
- Landing exactly on the end square wins the game.
- Overshooting the end bounces back by the excess.

SPECIAL SQUARES:
- The Bridge (square 6 on the classic board) jumps the player to square 12.
- The Goose squares repeat the same move again, and geese can chain.

PRANKS:
- Landing on a square occupied by other players sends them back to the
  square the mover started the turn from.

TOOLS:
1. create_game, then add_player for every player
2. move (choose the dice) or roll_and_move (roll them) in turn
3. game_state to see the board, list_games to find your game`

func formatSessionInfo(info *service.SessionInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Game %s on board %s, %d turn(s)\n", info.ID, info.Board, info.Turns)

	if len(info.Players) == 0 {
		b.WriteString("  no players yet\n")
	}
	for _, p := range info.Players {
		fmt.Fprintf(&b, "  %s: %s\n", p.Player, p.Square.Label())
	}
	if info.Winner != "" {
		fmt.Fprintf(&b, "  winner: %s\n", info.Winner)
	}
	return b.String()
}

func formatBoards(configs []*service.ConfigInfo) string {
	if len(configs) == 0 {
		return "No boards available."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d board(s):\n", len(configs))
	for _, c := range configs {
		geese := make([]string, 0, len(c.Geese))
		for _, g := range c.Geese {
			geese = append(geese, fmt.Sprint(g))
		}

		fmt.Fprintf(&b, "- %s: %s\n", c.ConfigID, c.Description)
		fmt.Fprintf(&b, "  end %d, bridge %d -> 12, geese %s, longest chain %d hop(s)\n",
			c.End, c.Bridge, strings.Join(geese, ", "), c.LongestChain)
	}
	return b.String()
}
