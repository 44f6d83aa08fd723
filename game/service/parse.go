package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wricardo/mcp-training/goosegame/game/board"
	"github.com/wricardo/mcp-training/goosegame/game/dice"
	"github.com/wricardo/mcp-training/goosegame/game/engine"
)

// ParseCommand reads one line of the text protocol:
//
//	add player NAME
//	remove player NAME
//	move NAME A, B
//	move NAME
//
// A move without dice rolls them.
func ParseCommand(line string) (board.Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return board.Command{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}

	switch strings.ToLower(fields[0]) {
	case "add", "remove":
		if len(fields) != 3 || strings.ToLower(fields[1]) != "player" {
			return board.Command{}, fmt.Errorf("%w: expected '%s player NAME'", ErrUnknownCommand, fields[0])
		}
		if strings.ToLower(fields[0]) == "add" {
			return engine.Add[string, int](fields[2]), nil
		}
		return engine.Remove[string, int](fields[2]), nil

	case "move":
		if len(fields) < 2 {
			return board.Command{}, fmt.Errorf("%w: expected 'move NAME [A, B]'", ErrUnknownCommand)
		}
		player := fields[1]
		if len(fields) == 2 {
			return engine.RollAndMove[string, int](player), nil
		}
		first, second, err := parseDice(strings.Join(fields[2:], " "))
		if err != nil {
			return board.Command{}, err
		}
		return engine.Move(player, first, second), nil

	default:
		return board.Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
}

func parseDice(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: expected two dice separated by a comma, got %q", ErrInvalidRoll, s)
	}

	var values [2]int
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q is not a number", ErrInvalidRoll, strings.TrimSpace(part))
		}
		values[i] = v
	}
	if err := validateRoll(values[0], values[1]); err != nil {
		return 0, 0, err
	}
	return values[0], values[1], nil
}

func validateRoll(first, second int) error {
	for _, v := range []int{first, second} {
		if v < 1 || v > dice.Sides {
			return fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidRoll, v, dice.Sides)
		}
	}
	return nil
}

// FormatCommand renders a command in the text protocol
func FormatCommand(cmd board.Command) string {
	switch cmd.Kind {
	case engine.CommandAdd:
		return "add player " + cmd.Player
	case engine.CommandRemove:
		return "remove player " + cmd.Player
	case engine.CommandMove:
		return fmt.Sprintf("move %s %d, %d", cmd.Player, cmd.Dice[0], cmd.Dice[1])
	case engine.CommandRollAndMove:
		return "move " + cmd.Player
	default:
		return cmd.Kind.String()
	}
}
